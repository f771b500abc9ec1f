package framework

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const siteQueryInterval = time.Millisecond * 100

// SiteInfo describes the response to the initial query of the site under test.
type SiteInfo struct {
	StatusCode  int
	ContentType string
	Title       string
}

// TestHarness knows where the site under test lives. Browser sessions are created by the
// domain-specific layer; the harness only checks that there is something to point them at.
type TestHarness struct {
	siteBaseURL string
	siteInfo    SiteInfo
	httpClient  *http.Client
	logger      Logger
}

// NewTestHarness creates a TestHarness for the site at siteBaseURL. It does not contact
// the site; call AwaitSite for that.
func NewTestHarness(siteBaseURL string, debugLogger Logger) *TestHarness {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	return &TestHarness{
		siteBaseURL: strings.TrimSuffix(siteBaseURL, "/"),
		httpClient:  &http.Client{Timeout: time.Second * 5},
		logger:      debugLogger,
	}
}

func (h *TestHarness) SiteBaseURL() string {
	return h.siteBaseURL
}

func (h *TestHarness) SiteInfo() SiteInfo {
	return h.siteInfo
}

func (h *TestHarness) Logger() Logger {
	return h.logger
}

// AwaitSite polls the site's base URL until it returns a successful response, or until
// the timeout elapses. Progress is written to output.
func (h *TestHarness) AwaitSite(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to site under test at %s", h.siteBaseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := h.httpClient.Get(h.siteBaseURL + "/")
		if err == nil {
			fmt.Fprintln(output)
			info, err := readSiteInfo(resp)
			if err != nil {
				return err
			}
			h.siteInfo = info
			if info.Title != "" {
				fmt.Fprintf(output, "Site responded with page title %q\n", info.Title)
			}
			return nil
		}
		h.logger.Printf("Site query failed: %s", err)
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(siteQueryInterval)
	}
}

func readSiteInfo(resp *http.Response) (SiteInfo, error) {
	defer resp.Body.Close()
	info := SiteInfo{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return info, fmt.Errorf("site returned status code %d", resp.StatusCode)
	}
	if !strings.HasPrefix(info.ContentType, "text/html") {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		return info, nil
	}
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return info, fmt.Errorf("malformed page from site: %w", err)
	}
	info.Title = findTitle(doc)
	return info, nil
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			return strings.TrimSpace(n.FirstChild.Data)
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

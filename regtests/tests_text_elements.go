package regtests

func DoTextElementTests(t *T) {
	for _, te := range textElements {
		te := te
		t.Run(string(te.id), func(t *T) {
			form := OpenRegistrationForm(t)
			form.ExpectText(t, Hard, te.id, te.text)
		})
	}
}

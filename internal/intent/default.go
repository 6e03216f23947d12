package intent

// DefaultCatalog is used when no catalog file is configured. The Persian
// exemplars keep parity with multilingual embedding models.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Definition{
		{
			Name:        IntentMath,
			Description: "Arithmetic and calculations",
			Exemplars: []string{
				"calculate", "solve this", "what is 2 plus 2", "multiply", "divide", "add", "subtract",
				"محاسبه", "ریاضی", "حل کن", "بعلاوه", "منهای", "ضرب", "تقسیم",
			},
		},
		{
			Name:        IntentSearch,
			Description: "Looking up news or information",
			Exemplars: []string{
				"search", "look up", "latest news", "find information about", "what's new",
				"جستجو", "اخبار", "جدید", "به روز", "سرچ", "information", "info",
			},
		},
		{
			Name:        IntentGeneral,
			Description: "Greetings and small talk",
			Exemplars: []string{
				"hello", "how are you", "goodbye", "help me", "thanks",
				"سلام", "حالت", "چطوری", "خداحافظ", "help", "کمک",
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

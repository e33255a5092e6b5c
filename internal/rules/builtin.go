package rules

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }

// Builtin returns the baseline restaurant rule set. It seeds the store when no
// corpus file is configured and serves as the last-resort corpus when the
// initial load fails, so the engine never runs against an empty rule set.
func Builtin() []Rule {
	return []Rule{
		{
			ID:         "health-baseline",
			Category:   "Ministry of Health",
			Title:      "Sanitation requirements for food establishments, drinking water and wastewater",
			Status:     StatusMandatory,
			Note:       "Food establishment regulations, drinking water quality, smoking prevention and signage.",
			SectionRef: "Health - cross-cutting conditions",
			Source:     "builtin",
		},
		{
			ID:       "health-smoking-signage",
			Category: "Ministry of Health",
			Title:    "No-smoking signage and separation of smoking areas where present",
			Status:   StatusMandatory,
			Note:     "Smoking prevention law and signage regulations.",
			Source:   "builtin",
		},
		{
			ID:       "delivery-rules",
			Category: "Ministry of Health - food delivery",
			Title:    "Food delivery requirements",
			Status:   StatusMandatory,
			Note:     "Dedicated area, refrigeration/freezing, temperature monitoring and logging, packaging equipment, delivery within 3 hours.",
			If:       Condition{FeaturesAll: []string{"delivery"}},
			Source:   "builtin",
		},
		{
			ID:       "police-alcohol",
			Category: "Israel Police",
			Title:    "Police requirements for serving or selling alcohol",
			Status:   StatusMandatory,
			Note:     "CCTV, exterior lighting, under-18 sale prohibition signage, recordings retained 14 days.",
			If:       Condition{FeaturesAll: []string{"alcohol"}},
			Source:   "builtin",
		},
		{
			ID:       "police-capacity",
			Category: "Israel Police",
			Title:    "Police requirements for occupancy above 200",
			Status:   StatusMandatory,
			Note:     "CCTV, signage and lighting per chapter 3.",
			If:       Condition{SeatsMin: n(201)},
			Source:   "builtin",
		},
		{
			ID:         "fire-affidavit",
			Category:   "Fire and Rescue (declaration)",
			Title:      "Declaration track - up to 50 seats and up to 150 sqm",
			Status:     StatusMandatory,
			Note:       "Chapter 5 requirements: exit signage, emergency lighting, extinguishers.",
			SectionRef: "Chapter 5",
			If:         Condition{SeatsMax: n(50), AreaMax: f(150)},
			Source:     "builtin",
		},
		// Full fire review is an OR over area and seats, expressed as two
		// separate trigger rules.
		{
			ID:         "fire-full-area",
			Category:   "Fire and Rescue",
			Title:      "Full review track - area above 150 sqm",
			Status:     StatusMandatory,
			Note:       "Escape routes, fire posts, emergency lighting; sprinklers or smoke detection may apply per thresholds.",
			SectionRef: "Chapter 6",
			If:         Condition{AreaMin: f(151)},
			Source:     "builtin",
		},
		{
			ID:         "fire-full-seats",
			Category:   "Fire and Rescue",
			Title:      "Full review track - occupancy above 50",
			Status:     StatusMandatory,
			Note:       "Escape routes, fire posts, emergency lighting; sprinklers or smoke detection may apply per thresholds.",
			SectionRef: "Chapter 6",
			If:         Condition{SeatsMin: n(51)},
			Source:     "builtin",
		},
		{
			ID:       "gas-cert",
			Category: "LPG safety",
			Title:    "Certified LPG installer approval and IS 158 compliance",
			Status:   StatusMandatory,
			Note:     "Integrity checks, emergency shutoffs, routine maintenance.",
			If:       Condition{FeaturesAll: []string{"gas"}},
			Source:   "builtin",
		},
		{
			ID:       "hood-suppression",
			Category: "Fire and Rescue - hoods",
			Title:    "Hood suppression system for professional kitchens",
			Status:   StatusMandatory,
			Note:     "Wet chemical system per IS 5356-2 plus energy cutoff.",
			If:       Condition{FeaturesAny: []string{"gas", "hood"}},
			Source:   "builtin",
		},
		{
			ID:       "vet-approval-meat",
			Category: "Ministry of Health - meat and fish",
			Title:    "Veterinary approvals for meat and fish and supplier records",
			Status:   StatusMandatory,
			Note:     "Source documentation for all meat and fish products.",
			If:       Condition{FeaturesAny: []string{"meat"}},
			Source:   "builtin",
		},
		{
			ID:       "storage-separation",
			Category: "Ministry of Health - meat and fish",
			Title:    "Separated storage for meat and fish, raw and prepared",
			Status:   StatusRecommended,
			Note:     "Separate refrigeration or clearly partitioned storage areas.",
			If:       Condition{FeaturesAny: []string{"meat"}},
			Source:   "builtin",
		},
	}
}

package bucket

var (
	ReligiousLevels = NewVocabulary("religious_level",
		Same("very_practising", "practising", "moderately_practising", "not_practising")...)

	Sects = NewVocabulary("sect",
		Same("sunni", "shia", "ahmadi", "ismaili", "ibadi", "other")...)

	PrayerFrequencies = NewVocabulary("prayer_frequency",
		Term{Value: "always_prays", Bucket: "always_pray"},
		Term{Value: "usually_prays", Bucket: "usually_pray"},
		Term{Value: "sometimes_prays", Bucket: "sometimes_pray"},
		Term{Value: "never_prays", Bucket: "never_pray"},
	)

	MarriageTimelines = NewVocabulary("partner_marriage_timeline",
		Same(
			"partner_agree_together",
			"partner_within_1_year",
			"partner_within_2_year",
			"partner_within_3_year",
			"partner_within_5_year",
		)...)

	ChildrenExpectations = NewVocabulary("partner_children_expectation",
		Term{Value: "wants_children", Bucket: "partner_wants_children"},
		Term{Value: "open_to_have_children", Bucket: "partner_open_to_have_children"},
		Term{Value: "does_not_want_children", Bucket: "partner_does_not_want_children"},
	)

	Genders = NewVocabulary("gender", Same("male", "female")...)

	EthnicOrigins = NewVocabulary("partner_ethnic_origin", Same(
		"arab",
		"south_asian",
		"east_asian",
		"southeast_asian",
		"central_asian",
		"persian",
		"turkish",
		"kurdish",
		"african",
		"caribbean",
		"european",
		"latin_american",
		"mixed",
		"other",
	)...)

	PersonalityTraits = NewVocabulary("partner_personality_trait", Same(
		"adventurous",
		"ambitious",
		"caring",
		"creative",
		"easygoing",
		"family_oriented",
		"funny",
		"honest",
		"intellectual",
		"introverted",
		"extroverted",
		"optimistic",
		"patient",
		"romantic",
		"spiritual",
		"spontaneous",
	)...)
)

package preference

import (
	"github.com/oggyb/matching-service/internal/bucket"
	"github.com/oggyb/matching-service/internal/db"
)

type (
	ageFlag         = Flag[db.AgeRange]
	partnerAgeFlag  = Flag[db.PartnerAgeRange]
	genderFlag      = Flag[db.Gender]
	heightFlag      = Flag[db.PartnerHeight]
	religiousFlag   = Flag[db.ReligiousLevel]
	sectFlag        = Flag[db.Sect]
	prayerFlag      = Flag[db.PrayerFrequency]
	timelineFlag    = Flag[db.PartnerMarriageTimeline]
	childrenFlag    = Flag[db.PartnerChildrenExpectation]
	smokingFlag     = Flag[db.SmokingStatus]
	ethnicFlag      = Flag[db.PartnerEthnics]
	personalityFlag = Flag[db.PartnerPersonalityTraits]
)

var AgeRange = Definition[db.AgeRange]{
	Category: NewCategory("age_range",
		ageFlag{"range_18_to_24", func(r *db.AgeRange) *bool { return &r.Range18To24 }},
		ageFlag{"range_25_to_34", func(r *db.AgeRange) *bool { return &r.Range25To34 }},
		ageFlag{"range_35_to_44", func(r *db.AgeRange) *bool { return &r.Range35To44 }},
		ageFlag{"range_above_44", func(r *db.AgeRange) *bool { return &r.RangeAbove44 }},
	),
	Path:     "age-range",
	Field:    "date_of_birth",
	Label:    "age range",
	Kind:     DateInput,
	classify: byAge(""),
}

var PartnerAgeRange = Definition[db.PartnerAgeRange]{
	Category: NewCategory("partner_age_range",
		partnerAgeFlag{"partner_range_18_to_24", func(r *db.PartnerAgeRange) *bool { return &r.Range18To24 }},
		partnerAgeFlag{"partner_range_25_to_34", func(r *db.PartnerAgeRange) *bool { return &r.Range25To34 }},
		partnerAgeFlag{"partner_range_35_to_44", func(r *db.PartnerAgeRange) *bool { return &r.Range35To44 }},
		partnerAgeFlag{"partner_range_above_44", func(r *db.PartnerAgeRange) *bool { return &r.RangeAbove44 }},
	),
	Path:     "partner-age-range",
	Field:    "date_of_birth",
	Label:    "partner age range",
	Kind:     DateInput,
	classify: byAge("partner_"),
}

var Gender = Definition[db.Gender]{
	Category: NewCategory("gender",
		genderFlag{"male", func(r *db.Gender) *bool { return &r.Male }},
		genderFlag{"female", func(r *db.Gender) *bool { return &r.Female }},
	),
	Path:     "gender",
	Field:    "gender",
	Label:    "gender",
	Kind:     GenderInput,
	classify: byGender,
}

var PartnerHeight = Definition[db.PartnerHeight]{
	Category: NewCategory("partner_height",
		heightFlag{"partner_range_140_to_145", func(r *db.PartnerHeight) *bool { return &r.Range140145 }},
		heightFlag{"partner_range_146_to_150", func(r *db.PartnerHeight) *bool { return &r.Range146150 }},
		heightFlag{"partner_range_151_to_155", func(r *db.PartnerHeight) *bool { return &r.Range151155 }},
		heightFlag{"partner_range_156_to_160", func(r *db.PartnerHeight) *bool { return &r.Range156160 }},
		heightFlag{"partner_range_161_to_165", func(r *db.PartnerHeight) *bool { return &r.Range161165 }},
		heightFlag{"partner_range_166_to_170", func(r *db.PartnerHeight) *bool { return &r.Range166170 }},
		heightFlag{"partner_range_171_to_175", func(r *db.PartnerHeight) *bool { return &r.Range171175 }},
		heightFlag{"partner_range_176_to_180", func(r *db.PartnerHeight) *bool { return &r.Range176180 }},
		heightFlag{"partner_range_181_to_185", func(r *db.PartnerHeight) *bool { return &r.Range181185 }},
		heightFlag{"partner_range_186_to_190", func(r *db.PartnerHeight) *bool { return &r.Range186190 }},
		heightFlag{"partner_range_191_to_195", func(r *db.PartnerHeight) *bool { return &r.Range191195 }},
		heightFlag{"partner_range_196_to_200", func(r *db.PartnerHeight) *bool { return &r.Range196200 }},
		heightFlag{"partner_range_201_to_205", func(r *db.PartnerHeight) *bool { return &r.Range201205 }},
		heightFlag{"partner_range_206_to_210", func(r *db.PartnerHeight) *bool { return &r.Range206210 }},
		heightFlag{"partner_range_211_to_215", func(r *db.PartnerHeight) *bool { return &r.Range211215 }},
		heightFlag{"partner_range_216_to_220", func(r *db.PartnerHeight) *bool { return &r.Range216220 }},
	),
	Path:     "partner-height",
	Field:    "partner_height",
	Label:    "partner height",
	Kind:     HeightInput,
	classify: byHeight("partner_"),
}

var ReligiousLevel = Definition[db.ReligiousLevel]{
	Category: NewCategory("religious_level",
		religiousFlag{"very_practising", func(r *db.ReligiousLevel) *bool { return &r.VeryPractising }},
		religiousFlag{"practising", func(r *db.ReligiousLevel) *bool { return &r.Practising }},
		religiousFlag{"moderately_practising", func(r *db.ReligiousLevel) *bool { return &r.ModeratelyPractising }},
		religiousFlag{"not_practising", func(r *db.ReligiousLevel) *bool { return &r.NotPractising }},
	),
	Path:     "religious-level",
	Field:    "religious_level",
	Label:    "religious level",
	Kind:     LabelInput,
	classify: byLabel(bucket.ReligiousLevels),
}

var Sects = Definition[db.Sect]{
	Category: NewCategory("sects",
		sectFlag{"sunni", func(r *db.Sect) *bool { return &r.Sunni }},
		sectFlag{"shia", func(r *db.Sect) *bool { return &r.Shia }},
		sectFlag{"ahmadi", func(r *db.Sect) *bool { return &r.Ahmadi }},
		sectFlag{"ismaili", func(r *db.Sect) *bool { return &r.Ismaili }},
		sectFlag{"ibadi", func(r *db.Sect) *bool { return &r.Ibadi }},
		sectFlag{"other", func(r *db.Sect) *bool { return &r.Other }},
	),
	Path:     "sects",
	Field:    "sects",
	Label:    "sect",
	Kind:     LabelInput,
	classify: byLabel(bucket.Sects),
}

var PrayerFrequency = Definition[db.PrayerFrequency]{
	Category: NewCategory("prayer_frequency",
		prayerFlag{"always_pray", func(r *db.PrayerFrequency) *bool { return &r.AlwaysPray }},
		prayerFlag{"usually_pray", func(r *db.PrayerFrequency) *bool { return &r.UsuallyPray }},
		prayerFlag{"sometimes_pray", func(r *db.PrayerFrequency) *bool { return &r.SometimesPray }},
		prayerFlag{"never_pray", func(r *db.PrayerFrequency) *bool { return &r.NeverPray }},
	),
	Path:     "prayer-frequency",
	Field:    "prayer_frequency",
	Label:    "prayer frequency",
	Kind:     LabelInput,
	classify: byLabel(bucket.PrayerFrequencies),
}

var PartnerMarriageTimeline = Definition[db.PartnerMarriageTimeline]{
	Category: NewCategory("partner_marriage_timeline",
		timelineFlag{"partner_agree_together", func(r *db.PartnerMarriageTimeline) *bool { return &r.AgreeTogether }},
		timelineFlag{"partner_within_1_year", func(r *db.PartnerMarriageTimeline) *bool { return &r.Within1Year }},
		timelineFlag{"partner_within_2_year", func(r *db.PartnerMarriageTimeline) *bool { return &r.Within2Year }},
		timelineFlag{"partner_within_3_year", func(r *db.PartnerMarriageTimeline) *bool { return &r.Within3Year }},
		timelineFlag{"partner_within_5_year", func(r *db.PartnerMarriageTimeline) *bool { return &r.Within5Year }},
	),
	Path:     "partner-marriage-timeline",
	Field:    "partner_marriage_timeline",
	Label:    "partner marriage timeline",
	Kind:     LabelInput,
	classify: byLabel(bucket.MarriageTimelines),
}

var PartnerChildrenExpectation = Definition[db.PartnerChildrenExpectation]{
	Category: NewCategory("partner_children_expectation",
		childrenFlag{"partner_wants_children", func(r *db.PartnerChildrenExpectation) *bool { return &r.WantsChildren }},
		childrenFlag{"partner_open_to_have_children", func(r *db.PartnerChildrenExpectation) *bool { return &r.OpenToHaveChildren }},
		childrenFlag{"partner_does_not_want_children", func(r *db.PartnerChildrenExpectation) *bool { return &r.DoesNotWantChildren }},
	),
	Path:     "partner-children-expectations",
	Field:    "partner_children_expectation",
	Label:    "partner children expectation",
	Kind:     LabelInput,
	classify: byLabel(bucket.ChildrenExpectations),
}

var SmokingStatus = Definition[db.SmokingStatus]{
	Category: NewCategory("smoking_status",
		smokingFlag{"does_smoke", func(r *db.SmokingStatus) *bool { return &r.DoesSmoke }},
	),
	Path:     "smoking-status",
	Field:    "does_smoke",
	Label:    "smoking status",
	Kind:     BoolInput,
	classify: bySmoking,
}

var PartnerEthnics = Definition[db.PartnerEthnics]{
	Category: NewCategory("partner_ethnics",
		ethnicFlag{"arab", func(r *db.PartnerEthnics) *bool { return &r.Arab }},
		ethnicFlag{"south_asian", func(r *db.PartnerEthnics) *bool { return &r.SouthAsian }},
		ethnicFlag{"east_asian", func(r *db.PartnerEthnics) *bool { return &r.EastAsian }},
		ethnicFlag{"southeast_asian", func(r *db.PartnerEthnics) *bool { return &r.SoutheastAsian }},
		ethnicFlag{"central_asian", func(r *db.PartnerEthnics) *bool { return &r.CentralAsian }},
		ethnicFlag{"persian", func(r *db.PartnerEthnics) *bool { return &r.Persian }},
		ethnicFlag{"turkish", func(r *db.PartnerEthnics) *bool { return &r.Turkish }},
		ethnicFlag{"kurdish", func(r *db.PartnerEthnics) *bool { return &r.Kurdish }},
		ethnicFlag{"african", func(r *db.PartnerEthnics) *bool { return &r.African }},
		ethnicFlag{"caribbean", func(r *db.PartnerEthnics) *bool { return &r.Caribbean }},
		ethnicFlag{"european", func(r *db.PartnerEthnics) *bool { return &r.European }},
		ethnicFlag{"latin_american", func(r *db.PartnerEthnics) *bool { return &r.LatinAmerican }},
		ethnicFlag{"mixed", func(r *db.PartnerEthnics) *bool { return &r.Mixed }},
		ethnicFlag{"other", func(r *db.PartnerEthnics) *bool { return &r.Other }},
	),
	Path:       "partner-ethnics",
	Field:      "partner_ethnic_origins",
	Label:      "partner ethnics",
	Kind:       LabelsInput,
	Vocabulary: &bucket.EthnicOrigins,
	classify:   byLabels(bucket.EthnicOrigins),
}

var PartnerPersonalityTraits = Definition[db.PartnerPersonalityTraits]{
	Category: NewCategory("partner_personality_traits",
		personalityFlag{"adventurous", func(r *db.PartnerPersonalityTraits) *bool { return &r.Adventurous }},
		personalityFlag{"ambitious", func(r *db.PartnerPersonalityTraits) *bool { return &r.Ambitious }},
		personalityFlag{"caring", func(r *db.PartnerPersonalityTraits) *bool { return &r.Caring }},
		personalityFlag{"creative", func(r *db.PartnerPersonalityTraits) *bool { return &r.Creative }},
		personalityFlag{"easygoing", func(r *db.PartnerPersonalityTraits) *bool { return &r.Easygoing }},
		personalityFlag{"family_oriented", func(r *db.PartnerPersonalityTraits) *bool { return &r.FamilyOriented }},
		personalityFlag{"funny", func(r *db.PartnerPersonalityTraits) *bool { return &r.Funny }},
		personalityFlag{"honest", func(r *db.PartnerPersonalityTraits) *bool { return &r.Honest }},
		personalityFlag{"intellectual", func(r *db.PartnerPersonalityTraits) *bool { return &r.Intellectual }},
		personalityFlag{"introverted", func(r *db.PartnerPersonalityTraits) *bool { return &r.Introverted }},
		personalityFlag{"extroverted", func(r *db.PartnerPersonalityTraits) *bool { return &r.Extroverted }},
		personalityFlag{"optimistic", func(r *db.PartnerPersonalityTraits) *bool { return &r.Optimistic }},
		personalityFlag{"patient", func(r *db.PartnerPersonalityTraits) *bool { return &r.Patient }},
		personalityFlag{"romantic", func(r *db.PartnerPersonalityTraits) *bool { return &r.Romantic }},
		personalityFlag{"spiritual", func(r *db.PartnerPersonalityTraits) *bool { return &r.Spiritual }},
		personalityFlag{"spontaneous", func(r *db.PartnerPersonalityTraits) *bool { return &r.Spontaneous }},
	),
	Path:       "partner-personality-traits",
	Field:      "partner_personality_traits",
	Label:      "partner personality traits",
	Kind:       LabelsInput,
	Vocabulary: &bucket.PersonalityTraits,
	classify:   byLabels(bucket.PersonalityTraits),
}

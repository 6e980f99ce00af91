package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/matching-service/internal/matchstate"
)

// Owner is the user_id primary key shared by every preference table.
type Owner struct {
	UserID string `gorm:"primaryKey;size:64"`
}

func (o *Owner) OwnerID() string       { return o.UserID }
func (o *Owner) SetOwnerID(id string) { o.UserID = id }

// Timestamps is embedded by every preference table.
type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// AgeRange is the user's own age bucket, derived from date of birth.
type AgeRange struct {
	Owner
	Range18To24  bool `gorm:"column:range_18_to_24;not null;default:false"`
	Range25To34  bool `gorm:"column:range_25_to_34;not null;default:false"`
	Range35To44  bool `gorm:"column:range_35_to_44;not null;default:false"`
	RangeAbove44 bool `gorm:"column:range_above_44;not null;default:false"`
	Timestamps
}

func (AgeRange) TableName() string { return "age_range" }

// PartnerAgeRange is the preferred partner age bucket.
type PartnerAgeRange struct {
	Owner
	Range18To24  bool `gorm:"column:partner_range_18_to_24;not null;default:false"`
	Range25To34  bool `gorm:"column:partner_range_25_to_34;not null;default:false"`
	Range35To44  bool `gorm:"column:partner_range_35_to_44;not null;default:false"`
	RangeAbove44 bool `gorm:"column:partner_range_above_44;not null;default:false"`
	Timestamps
}

func (PartnerAgeRange) TableName() string { return "partner_age_ranges" }

// Gender replaces the old gender / gender_score pair with a single table.
type Gender struct {
	Owner
	Male   bool `gorm:"column:male;not null;default:false"`
	Female bool `gorm:"column:female;not null;default:false"`
	Timestamps
}

func (Gender) TableName() string { return "gender" }

// PartnerHeight holds the preferred partner height bucket.
type PartnerHeight struct {
	Owner
	Range140145 bool `gorm:"column:partner_range_140_to_145;not null;default:false"`
	Range146150 bool `gorm:"column:partner_range_146_to_150;not null;default:false"`
	Range151155 bool `gorm:"column:partner_range_151_to_155;not null;default:false"`
	Range156160 bool `gorm:"column:partner_range_156_to_160;not null;default:false"`
	Range161165 bool `gorm:"column:partner_range_161_to_165;not null;default:false"`
	Range166170 bool `gorm:"column:partner_range_166_to_170;not null;default:false"`
	Range171175 bool `gorm:"column:partner_range_171_to_175;not null;default:false"`
	Range176180 bool `gorm:"column:partner_range_176_to_180;not null;default:false"`
	Range181185 bool `gorm:"column:partner_range_181_to_185;not null;default:false"`
	Range186190 bool `gorm:"column:partner_range_186_to_190;not null;default:false"`
	Range191195 bool `gorm:"column:partner_range_191_to_195;not null;default:false"`
	Range196200 bool `gorm:"column:partner_range_196_to_200;not null;default:false"`
	Range201205 bool `gorm:"column:partner_range_201_to_205;not null;default:false"`
	Range206210 bool `gorm:"column:partner_range_206_to_210;not null;default:false"`
	Range211215 bool `gorm:"column:partner_range_211_to_215;not null;default:false"`
	Range216220 bool `gorm:"column:partner_range_216_to_220;not null;default:false"`
	Timestamps
}

func (PartnerHeight) TableName() string { return "partner_height_score" }

type ReligiousLevel struct {
	Owner
	VeryPractising       bool `gorm:"column:very_practising;not null;default:false"`
	Practising           bool `gorm:"column:practising;not null;default:false"`
	ModeratelyPractising bool `gorm:"column:moderately_practising;not null;default:false"`
	NotPractising        bool `gorm:"column:not_practising;not null;default:false"`
	Timestamps
}

func (ReligiousLevel) TableName() string { return "religious_level" }

type Sect struct {
	Owner
	Sunni   bool `gorm:"column:sunni;not null;default:false"`
	Shia    bool `gorm:"column:shia;not null;default:false"`
	Ahmadi  bool `gorm:"column:ahmadi;not null;default:false"`
	Ismaili bool `gorm:"column:ismaili;not null;default:false"`
	Ibadi   bool `gorm:"column:ibadi;not null;default:false"`
	Other   bool `gorm:"column:other;not null;default:false"`
	Timestamps
}

func (Sect) TableName() string { return "sects" }

type PrayerFrequency struct {
	Owner
	AlwaysPray    bool `gorm:"column:always_pray;not null;default:false"`
	UsuallyPray   bool `gorm:"column:usually_pray;not null;default:false"`
	SometimesPray bool `gorm:"column:sometimes_pray;not null;default:false"`
	NeverPray     bool `gorm:"column:never_pray;not null;default:false"`
	Timestamps
}

func (PrayerFrequency) TableName() string { return "prayer_frequency_scores" }

type PartnerMarriageTimeline struct {
	Owner
	AgreeTogether bool `gorm:"column:partner_agree_together;not null;default:false"`
	Within1Year   bool `gorm:"column:partner_within_1_year;not null;default:false"`
	Within2Year   bool `gorm:"column:partner_within_2_year;not null;default:false"`
	Within3Year   bool `gorm:"column:partner_within_3_year;not null;default:false"`
	Within5Year   bool `gorm:"column:partner_within_5_year;not null;default:false"`
	Timestamps
}

func (PartnerMarriageTimeline) TableName() string { return "partner_marriage_timeline" }

type PartnerChildrenExpectation struct {
	Owner
	WantsChildren       bool `gorm:"column:partner_wants_children;not null;default:false"`
	OpenToHaveChildren  bool `gorm:"column:partner_open_to_have_children;not null;default:false"`
	DoesNotWantChildren bool `gorm:"column:partner_does_not_want_children;not null;default:false"`
	Timestamps
}

func (PartnerChildrenExpectation) TableName() string { return "partner_children_expectations_score" }

// SmokingStatus is a single flag; false is a valid stored answer.
type SmokingStatus struct {
	Owner
	DoesSmoke bool `gorm:"column:does_smoke;not null;default:false"`
	Timestamps
}

func (SmokingStatus) TableName() string { return "smoking_status" }

// PartnerEthnics is multi-select: any subset of the ethnic origin vocabulary.
type PartnerEthnics struct {
	Owner
	Arab           bool `gorm:"column:arab;not null;default:false"`
	SouthAsian     bool `gorm:"column:south_asian;not null;default:false"`
	EastAsian      bool `gorm:"column:east_asian;not null;default:false"`
	SoutheastAsian bool `gorm:"column:southeast_asian;not null;default:false"`
	CentralAsian   bool `gorm:"column:central_asian;not null;default:false"`
	Persian        bool `gorm:"column:persian;not null;default:false"`
	Turkish        bool `gorm:"column:turkish;not null;default:false"`
	Kurdish        bool `gorm:"column:kurdish;not null;default:false"`
	African        bool `gorm:"column:african;not null;default:false"`
	Caribbean      bool `gorm:"column:caribbean;not null;default:false"`
	European       bool `gorm:"column:european;not null;default:false"`
	LatinAmerican  bool `gorm:"column:latin_american;not null;default:false"`
	Mixed          bool `gorm:"column:mixed;not null;default:false"`
	Other          bool `gorm:"column:other;not null;default:false"`
	Timestamps
}

func (PartnerEthnics) TableName() string { return "partner_ethnics_score" }

// PartnerPersonalityTraits is multi-select over the trait vocabulary.
type PartnerPersonalityTraits struct {
	Owner
	Adventurous    bool `gorm:"column:adventurous;not null;default:false"`
	Ambitious      bool `gorm:"column:ambitious;not null;default:false"`
	Caring         bool `gorm:"column:caring;not null;default:false"`
	Creative       bool `gorm:"column:creative;not null;default:false"`
	Easygoing      bool `gorm:"column:easygoing;not null;default:false"`
	FamilyOriented bool `gorm:"column:family_oriented;not null;default:false"`
	Funny          bool `gorm:"column:funny;not null;default:false"`
	Honest         bool `gorm:"column:honest;not null;default:false"`
	Intellectual   bool `gorm:"column:intellectual;not null;default:false"`
	Introverted    bool `gorm:"column:introverted;not null;default:false"`
	Extroverted    bool `gorm:"column:extroverted;not null;default:false"`
	Optimistic     bool `gorm:"column:optimistic;not null;default:false"`
	Patient        bool `gorm:"column:patient;not null;default:false"`
	Romantic       bool `gorm:"column:romantic;not null;default:false"`
	Spiritual      bool `gorm:"column:spiritual;not null;default:false"`
	Spontaneous    bool `gorm:"column:spontaneous;not null;default:false"`
	Timestamps
}

func (PartnerPersonalityTraits) TableName() string { return "partner_personality_traits_score" }

// Match is a relationship between two users.
//
// PK: (PartnerID1, PartnerID2) in request order.
// Unique idx_match_pair(pair_low, pair_high) holds the sorted pair so
// (a, b) and (b, a) can never both exist.
type Match struct {
	PartnerID1 string            `gorm:"column:partner_id_1;primaryKey;size:64;index:idx_match_partner1_status,priority:1" json:"partner_id_1"`
	PartnerID2 string            `gorm:"column:partner_id_2;primaryKey;size:64;index:idx_match_partner2_status,priority:1" json:"partner_id_2"`
	PairLow    string            `gorm:"size:64;not null;uniqueIndex:idx_match_pair,priority:1" json:"-"`
	PairHigh   string            `gorm:"size:64;not null;uniqueIndex:idx_match_pair,priority:2" json:"-"`
	Status     matchstate.Status `gorm:"column:match_status;not null;default:0;index:idx_match_partner1_status,priority:2;index:idx_match_partner2_status,priority:2" json:"match_status"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Match) TableName() string { return "matches" }

// CanonicalPair orders two ids so that an unordered pair has one key.
func CanonicalPair(a, b string) (string, string) {
	if a <= b {
		return a, b
	}
	return b, a
}

// BeforeCreate fills the canonical pair columns.
func (m *Match) BeforeCreate(*gorm.DB) error {
	m.PairLow, m.PairHigh = CanonicalPair(m.PartnerID1, m.PartnerID2)
	return nil
}

// Visit records that UserID viewed VisitedUserID's profile.
//
// Composite PK: (UserID, VisitedUserID).
// idx_visited_created(visited_user_id, created_at DESC, user_id) serves the
// newest-first visitor listing.
type Visit struct {
	UserID        string    `gorm:"primaryKey;size:64" json:"user_id"`
	VisitedUserID string    `gorm:"primaryKey;size:64;index:idx_visited_created,priority:1" json:"visited_user_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index:idx_visited_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Visit) TableName() string { return "visited" }

// Models lists every table for migration.
func Models() []any {
	return []any{
		&AgeRange{},
		&PartnerAgeRange{},
		&Gender{},
		&PartnerHeight{},
		&ReligiousLevel{},
		&Sect{},
		&PrayerFrequency{},
		&PartnerMarriageTimeline{},
		&PartnerChildrenExpectation{},
		&SmokingStatus{},
		&PartnerEthnics{},
		&PartnerPersonalityTraits{},
		&Match{},
		&Visit{},
	}
}

package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matching-service/internal/matchstate"
)

const seedUsers = 20

// SeedTestData resets the database and populates it with demo preferences,
// matches and visits.
//
// Behavior:
//  1. Clears every table returned by Models.
//  2. Creates 20 users (user1..user10 male, user11..user20 female) with an
//     age range, gender, religious level and smoking status each.
//  3. Requests a match between user i and user i+10. Every 3rd is accepted,
//     every 4th declined, the rest stay requested.
//  4. Records ~5 random visits per user.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := clearAll(db); err != nil {
		return err
	}
	slog.Info("cleared existing data")

	for i := 1; i <= seedUsers; i++ {
		uid := seedUserID(i)
		if err := seedPreferences(db, uid, i > seedUsers/2, r.Intn(4), r.Intn(100) < 20); err != nil {
			return err
		}
	}
	slog.Info("seeded preferences", "users", seedUsers)

	matches := 0
	for i := 1; i <= seedUsers/2; i++ {
		m := Match{PartnerID1: seedUserID(i), PartnerID2: seedUserID(i + seedUsers/2)}
		switch {
		case i%3 == 0:
			m.Status = matchstate.Matched
		case i%4 == 0:
			m.Status = matchstate.Declined
		}
		if err := db.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to seed match: %w", err)
		}
		matches++
	}
	slog.Info("seeded matches", "count", matches)

	visits := 0
	for i := 1; i <= seedUsers; i++ {
		for j := 0; j < 5; j++ {
			target := r.Intn(seedUsers) + 1
			if target == i {
				continue
			}
			v := Visit{UserID: seedUserID(i), VisitedUserID: seedUserID(target)}
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&v)
			if res.Error != nil {
				return fmt.Errorf("failed to seed visit: %w", res.Error)
			}
			visits += int(res.RowsAffected)
		}
	}
	slog.Info("seeded visits", "count", visits)

	return nil
}

// SeedMinimalTestData loads a small deterministic fixture:
// user1 (male) and user2 (female) are MATCHED, user3 → user1 is REQUESTED,
// user2 and user3 both visited user1.
func SeedMinimalTestData(db *gorm.DB) error {
	if err := clearAll(db); err != nil {
		return err
	}

	for i, female := range []bool{false, true, true} {
		if err := seedPreferences(db, seedUserID(i+1), female, i, false); err != nil {
			return err
		}
	}

	matches := []Match{
		{PartnerID1: "user1", PartnerID2: "user2", Status: matchstate.Matched},
		{PartnerID1: "user3", PartnerID2: "user1", Status: matchstate.Requested},
	}
	if err := db.Create(&matches).Error; err != nil {
		return err
	}

	visits := []Visit{
		{UserID: "user2", VisitedUserID: "user1"},
		{UserID: "user3", VisitedUserID: "user1"},
	}
	return db.Create(&visits).Error
}

func clearAll(db *gorm.DB) error {
	s := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range Models() {
		if err := s.Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", m, err)
		}
	}
	return nil
}

func seedUserID(i int) string { return fmt.Sprintf("user%d", i) }

// seedPreferences writes one record per seeded category. level picks both the
// age bucket and the religious level (0..3).
func seedPreferences(db *gorm.DB, uid string, female bool, level int, smokes bool) error {
	age := AgeRange{Owner: Owner{UserID: uid}}
	religious := ReligiousLevel{Owner: Owner{UserID: uid}}
	switch level % 4 {
	case 0:
		age.Range18To24, religious.VeryPractising = true, true
	case 1:
		age.Range25To34, religious.Practising = true, true
	case 2:
		age.Range35To44, religious.ModeratelyPractising = true, true
	default:
		age.RangeAbove44, religious.NotPractising = true, true
	}

	records := []any{
		&age,
		&Gender{Owner: Owner{UserID: uid}, Male: !female, Female: female},
		&religious,
		&SmokingStatus{Owner: Owner{UserID: uid}, DoesSmoke: smokes},
	}
	for _, rec := range records {
		if err := db.Create(rec).Error; err != nil {
			return fmt.Errorf("failed to seed %T for %s: %w", rec, uid, err)
		}
	}
	return nil
}

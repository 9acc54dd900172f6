package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrLedgerConflict is returned when a ledger slot stayed contended past the
// retry bound. The caller should retry the whole operation.
var ErrLedgerConflict = errors.New("record ledger contention, retry the operation")

// advanceAttempts bounds the compare-and-write loop. A slot can only stay
// contended while concurrent first-ever inserts race for the same triple.
const advanceAttempts = 4

// Ledger provides atomic compare-and-update over record entries. TryAdvance
// runs on whatever *gorm.DB it is handed, so callers decide the transaction
// boundary; the ingestion gateway passes its own transaction to make set
// persistence and ledger advances commit together.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// TryAdvance compares value against the stored best for the triple and, if
// the slot is empty or value is strictly greater, writes the new best and
// timestamp. Ties never advance. It reports whether it advanced and the best
// value now in the ledger.
//
// Atomicity per triple comes from a guarded UPDATE (the compare and the
// write are one statement) plus INSERT ... ON CONFLICT DO NOTHING for the
// first entry; a lost insert race re-reads and recompares, bounded by
// advanceAttempts before surfacing ErrLedgerConflict.
func (l *Ledger) TryAdvance(tx *gorm.DB, userID, exerciseID uuid.UUID, recordType RecordType, value float64, at time.Time) (bool, float64, error) {
	for attempt := 0; attempt < advanceAttempts; attempt++ {
		res := tx.Model(&models.RecordEntry{}).
			Where("user_id = ? AND exercise_id = ? AND record_type = ? AND best_value < ?",
				userID, exerciseID, recordType, value).
			Updates(map[string]interface{}{"best_value": value, "achieved_at": at})
		if res.Error != nil {
			return false, 0, fmt.Errorf("failed to advance record entry: %w", res.Error)
		}
		if res.RowsAffected == 1 {
			return true, value, nil
		}

		// Nothing advanced: the slot is either absent or already holds an
		// equal or greater best.
		var entry models.RecordEntry
		err := tx.Where("user_id = ? AND exercise_id = ? AND record_type = ?",
			userID, exerciseID, recordType).First(&entry).Error
		if err == nil {
			return false, entry.BestValue, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, fmt.Errorf("failed to read record entry: %w", err)
		}

		entry = models.RecordEntry{
			ID:         uuid.New(),
			UserID:     userID,
			ExerciseID: exerciseID,
			RecordType: string(recordType),
			BestValue:  value,
			AchievedAt: at,
		}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
		if ins.Error != nil {
			return false, 0, fmt.Errorf("failed to create record entry: %w", ins.Error)
		}
		if ins.RowsAffected == 1 {
			return true, value, nil
		}
		// Lost the first-entry race; re-read and recompare.
	}
	return false, 0, ErrLedgerConflict
}

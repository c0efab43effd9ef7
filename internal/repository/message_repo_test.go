package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a per-test in-memory database. The shared-cache DSN
// keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Message{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedMessage(t *testing.T, db *gorm.DB, sender, receiver string) uint64 {
	t.Helper()
	msg := &domain.Message{
		Subject:    "hello",
		Body:       "world",
		SenderID:   sender,
		ReceiverID: receiver,
	}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return msg.ID
}

func messageCount(t *testing.T, db *gorm.DB, id uint64) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&domain.Message{}).Where("id = ?", id).Count(&count).Error; err != nil {
		t.Fatalf("failed to count messages: %v", err)
	}
	return count
}

func TestMessageRepositoryFindByID_Absent(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))

	msg, err := repo.FindByID(12345)

	assert.NoError(t, err)
	assert.Nil(t, msg)
}

func TestMessageRepositoryDelete_OneSideKeepsRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	id := seedMessage(t, db, "alice", "bob")

	assert.NoError(t, repo.Delete(id, "alice"))

	assert.Equal(t, int64(1), messageCount(t, db, id))

	sent, err := repo.FindBySenderID("alice")
	assert.NoError(t, err)
	assert.Empty(t, sent)

	inbox, err := repo.FindByReceiverID("bob")
	assert.NoError(t, err)
	assert.Len(t, inbox, 1)
}

func TestMessageRepositoryDelete_BothSidesPurgesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	id := seedMessage(t, db, "alice", "bob")

	assert.NoError(t, repo.Delete(id, "alice"))
	assert.NoError(t, repo.Delete(id, "bob"))

	assert.Equal(t, int64(0), messageCount(t, db, id))
}

func TestMessageRepositoryDelete_InterleavedOppositeDeletePurges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	id := seedMessage(t, db, "alice", "bob")

	// land the receiver's delete between the sender's flag update and
	// the purge check; the purge must still see both flags set
	flipped := false
	err := db.Callback().Update().After("gorm:update").Register("opposite_side_delete", func(tx *gorm.DB) {
		if flipped || tx.Statement.Table != "messages" {
			return
		}
		flipped = true
		db.Exec("UPDATE messages SET deleted_by_receiver = true WHERE id = ?", id)
	})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(id, "alice"))

	assert.Equal(t, int64(0), messageCount(t, db, id))
}

func TestMessageRepositoryMarkAsRead_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	id := seedMessage(t, db, "alice", "bob")

	first, err := repo.MarkAsRead(id, "bob")
	assert.NoError(t, err)
	assert.True(t, first.IsRead)
	assert.NotNil(t, first.ReadAt)

	second, err := repo.MarkAsRead(id, "bob")
	assert.NoError(t, err)
	assert.True(t, second.IsRead)
}

package scheduler_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/liberia-ecms/court-records-api/api/scheduler"
	"github.com/liberia-ecms/court-records-api/databases/mocks"
	"github.com/liberia-ecms/court-records-api/models"
)

func writeAged(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	old := time.Now().Add(-age)
	assert.NoError(t, os.Chtimes(path, old, old))
}

func TestSweepOrphans(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "civil-dockets")
	assert.NoError(t, os.MkdirAll(dir, 0o755))

	// referenced and old: kept. orphaned and old: removed. orphaned but
	// fresh: kept, it may be an upload still being linked.
	writeAged(t, dir, "keep.pdf", 48*time.Hour)
	writeAged(t, dir, "orphan.pdf", 48*time.Hour)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "fresh.pdf"), []byte("x"), 0o644))

	cursor := &mocks.CursorHelper{}
	cursor.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		docs := args.Get(1).(*[]struct {
			Attachments []models.Attachment `bson:"attachments"`
		})
		*docs = []struct {
			Attachments []models.Attachment `bson:"attachments"`
		}{
			{Attachments: []models.Attachment{{URL: "http://localhost:8080/uploads/civil-dockets/keep.pdf"}}},
		}
	})
	cursor.On("Close", mock.Anything).Return(nil)

	coll := &mocks.CollectionHelper{}
	coll.On("Find", mock.Anything, mock.Anything).Return(cursor, nil)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "civildockets").Return(coll)

	s := scheduler.NewSweeper(dbHelper, root, []models.Kind{models.CivilDocketKind})
	s.SweepOrphans()

	_, err := os.Stat(filepath.Join(dir, "keep.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "fresh.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "orphan.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestSweepOrphansSkipsMissingFolder(t *testing.T) {
	cursor := &mocks.CursorHelper{}
	cursor.On("All", mock.Anything, mock.Anything).Return(nil)
	cursor.On("Close", mock.Anything).Return(nil)

	coll := &mocks.CollectionHelper{}
	coll.On("Find", mock.Anything, mock.Anything).Return(cursor, nil)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "civildockets").Return(coll)

	s := scheduler.NewSweeper(dbHelper, t.TempDir(), []models.Kind{models.CivilDocketKind})
	// nothing to do, but it must not error or panic
	s.SweepOrphans()
}

// Package scheduler runs the nightly sweep that deletes upload files no
// report references anymore. Only the disk storage driver needs this; a
// crashed upload or a clear-all can strand blobs on disk.
package scheduler

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/liberia-ecms/court-records-api/databases"
	"github.com/liberia-ecms/court-records-api/models"
)

// minOrphanAge keeps the sweep from racing an in-flight upload
const minOrphanAge = 24 * time.Hour

// Sweeper deletes orphaned attachment files from the upload directory
type Sweeper struct {
	cron  *cron.Cron
	db    databases.DatabaseHelper
	root  string
	kinds []models.Kind
}

// NewSweeper creates a sweeper over the given upload root
func NewSweeper(db databases.DatabaseHelper, root string, kinds []models.Kind) *Sweeper {
	return &Sweeper{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		db:    db,
		root:  root,
		kinds: kinds,
	}
}

// Start registers the nightly job, daily at 3 AM UTC
func (s *Sweeper) Start() {
	_, err := s.cron.AddFunc("0 3 * * *", s.SweepOrphans)
	if err != nil {
		zap.S().Errorw("failed to register orphan sweep job", "error", err)
		return
	}
	s.cron.Start()
	zap.S().Infow("orphan sweep scheduled", "root", s.root)
}

// Stop halts the scheduler
func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SweepOrphans removes files in the upload tree that no report references
// and that are old enough to not be an upload in progress
func (s *Sweeper) SweepOrphans() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	referenced, err := s.referencedFiles(ctx)
	if err != nil {
		zap.S().Errorw("orphan sweep aborted", "error", err)
		return
	}

	var removed int
	cutoff := time.Now().Add(-minOrphanAge)
	for _, kind := range s.kinds {
		dir := filepath.Join(s.root, kind.UploadFolder)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || referenced[entry.Name()] {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				zap.S().Warnw("failed to remove orphaned file", "file", entry.Name(), "error", err)
				continue
			}
			removed++
		}
	}

	zap.S().Infow("orphan sweep finished", "removed", removed)
}

// referencedFiles collects the basename of every attachment URL across all
// report collections
func (s *Sweeper) referencedFiles(ctx context.Context) (map[string]bool, error) {
	referenced := map[string]bool{}
	for _, kind := range s.kinds {
		cursor, err := s.db.Collection(kind.Collection).Find(ctx, bson.M{"attachments.0": bson.M{"$exists": true}})
		if err != nil {
			return nil, err
		}

		var docs []struct {
			Attachments []models.Attachment `bson:"attachments"`
		}
		err = cursor.All(ctx, &docs)
		cursor.Close(ctx)
		if err != nil {
			return nil, err
		}

		for _, doc := range docs {
			for _, att := range doc.Attachments {
				referenced[path.Base(att.URL)] = true
			}
		}
	}
	return referenced, nil
}

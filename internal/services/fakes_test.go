package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BerylCAtieno/resume-autofill-api/internal/config"
	"github.com/BerylCAtieno/resume-autofill-api/internal/extractor"
	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
)

type fakeExtractor struct {
	text  string
	err   error
	calls int
	last  extractor.Document
	block bool
}

func (f *fakeExtractor) Extract(ctx context.Context, doc extractor.Document) (string, error) {
	f.calls++
	f.last = doc
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

type fakeApplicationRepo struct {
	mu        sync.Mutex
	apps      map[string]*models.Application
	createErr error
	getErr    error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.Application)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; ok {
		return errors.New("duplicate id")
	}
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id string) (*models.Application, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func testConfig() *config.Config {
	return &config.Config{
		MaxFileSize:    1024,
		ExtractTimeout: time.Second,
		S3BucketName:   "resumes",
		DatabasePath:   "unused.db",
	}
}

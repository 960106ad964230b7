package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pocketcasino/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	dir     string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "data")
	st, err := New(s.dir)
	s.Require().NoError(err)
	s.storage = st
	s.ctx = context.Background()
}

func (s *StorageSuite) TestNewCreatesDirectory() {
	info, err := os.Stat(s.dir)
	s.Require().NoError(err)
	s.True(info.IsDir())
	s.Equal(s.dir, s.storage.Dir())
}

func (s *StorageSuite) TestSetAndGet() {
	s.Require().NoError(s.storage.Set(s.ctx, "lucky-fun-casino-state", []byte(`{"coins":1}`)))

	data, err := s.storage.Get(s.ctx, "lucky-fun-casino-state")
	s.Require().NoError(err)
	s.JSONEq(`{"coins":1}`, string(data))

	_, err = os.Stat(filepath.Join(s.dir, "lucky-fun-casino-state.json"))
	s.NoError(err)
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "missing")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestOverwriteLeavesNoTempFiles() {
	s.Require().NoError(s.storage.Set(s.ctx, "state", []byte("one")))
	s.Require().NoError(s.storage.Set(s.ctx, "state", []byte("two")))

	data, err := s.storage.Get(s.ctx, "state")
	s.Require().NoError(err)
	s.Equal("two", string(data))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *StorageSuite) TestDelete() {
	s.Require().NoError(s.storage.Set(s.ctx, "state", []byte("x")))
	s.Require().NoError(s.storage.Delete(s.ctx, "state"))
	s.Require().NoError(s.storage.Delete(s.ctx, "state"))

	_, err := s.storage.Get(s.ctx, "state")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestRejectsPathKeys() {
	for _, key := range []string{"", "../escape", "a/b", ".."} {
		s.Error(s.storage.Set(s.ctx, key, []byte("x")), key)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/utils"
)

// maxExtensionLength bounds the extension kept from the uploaded file name.
const maxExtensionLength = 16

// fileArtifactStorage keeps artifacts on the local filesystem under baseDir.
// Locations are slash separated paths relative to baseDir:
// "<user id>/<uuid v7><extension>".
type fileArtifactStorage struct {
	baseDir string
	uuid    *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewFileArtifactStorage creates baseDir if needed and returns an
// [ArtifactStorage] writing below it.
func NewFileArtifactStorage(baseDir string, logger *logger.Logger) (ArtifactStorage, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		logger.Err(err).Str("func", "NewFileArtifactStorage").Str("dir", baseDir).Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("dir", baseDir).Msg("creating file artifact storage")
	return &fileArtifactStorage{
		baseDir: baseDir,
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

// Store writes content into a temporary file next to its final place and
// renames it once everything is on disk.
func (f *fileArtifactStorage) Store(ctx context.Context, userID int64, originalName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	location := artifactLocation(userID, f.uuid.Generate(), originalName)
	target := filepath.Join(f.baseDir, filepath.FromSlash(location))

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		log.Err(err).Str("func", "fileArtifactStorage.Store").Msg("error creating owner directory")
		return "", fmt.Errorf("error creating owner directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "fileArtifactStorage.Store").Msg("error creating temp file")
		return "", fmt.Errorf("error creating temp file: %w", err)
	}

	if err = writeAndClose(tmp, &contextReader{ctx: ctx, r: content}); err != nil {
		os.Remove(tmp.Name())
		log.Err(err).Str("func", "fileArtifactStorage.Store").Msg("error writing artifact")
		return "", fmt.Errorf("error writing artifact: %w", err)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		log.Err(err).Str("func", "fileArtifactStorage.Store").Msg("error moving artifact in place")
		return "", fmt.Errorf("error moving artifact in place: %w", err)
	}

	return location, nil
}

func writeAndClose(file *os.File, content io.Reader) error {
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (f *fileArtifactStorage) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	target, err := f.resolve(location)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrArtifactNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileArtifactStorage.Open").Str("location", location).Msg("error opening artifact")
		return nil, fmt.Errorf("error opening artifact: %w", err)
	}

	return file, nil
}

// Delete removes the artifact file. A file that is already gone counts as
// deleted.
func (f *fileArtifactStorage) Delete(ctx context.Context, location string) error {
	target, err := f.resolve(location)
	if err != nil {
		return err
	}

	err = os.Remove(target)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	logger.FromContext(ctx).Err(err).Str("func", "fileArtifactStorage.Delete").Str("location", location).Msg("error deleting artifact")
	return fmt.Errorf("error deleting artifact: %w", err)
}

func (f *fileArtifactStorage) resolve(location string) (string, error) {
	local := filepath.FromSlash(location)
	if location == "" || !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArtifactLocation, location)
	}

	return filepath.Join(f.baseDir, local), nil
}

// artifactLocation builds "<user id>/<token><extension>". Only a short
// alphanumeric extension of the original name survives.
func artifactLocation(userID int64, token, originalName string) string {
	return path.Join(strconv.FormatInt(userID, 10), token+safeExtension(originalName))
}

func safeExtension(originalName string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(originalName, "\\", "/")))
	if len(ext) < 2 || len(ext) > maxExtensionLength {
		return ""
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

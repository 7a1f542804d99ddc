// Package media implements the record actions offered by the renderers: download, share and play.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/loader"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/open"
	"github.com/vidshelf/vidshelf/util"
	"github.com/vidshelf/vidshelf/video"
)

var (
	// ErrUnavailable is returned for records without a playable media URL.
	ErrUnavailable = errors.New("No valid video URL available")

	// ErrShareUnsupported is returned when no share target exists on this system.
	ErrShareUnsupported = errors.New("Share feature not supported")
)

// Download fetches the record's media into dir as video_<id>.mp4 and returns the written path.
// The file only appears once the transfer completed.
func Download(ctx context.Context, record video.Record, dir string) (string, error) {
	if !record.HasMedia() {
		return "", ErrUnavailable
	}

	entry := log.With(log.Fields{"video": record.ID, "url": record.MediaURL})

	body, err := loader.New().Open(ctx, record.MediaURL)
	if err != nil {
		entry.WithError(err).Error("download failed")
		return "", fmt.Errorf("download %s: %w", record.ID, err)
	}
	defer body.Close()

	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(dir, util.SanitizeFilename(record.Filename()))
	tmp := path + ".part"

	file, err := filesystem.API().Create(tmp)
	if err != nil {
		return "", err
	}

	written, err := io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = filesystem.API().Remove(tmp)
		entry.WithError(err).Error("download failed")
		return "", fmt.Errorf("download %s: %w", record.ID, err)
	}

	if err := filesystem.API().Rename(tmp, path); err != nil {
		return "", err
	}

	entry.With(log.Fields{"path": path, "bytes": written}).Info("downloaded")
	return path, nil
}

var (
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
	writeClipboard       = clipboard.WriteAll
)

// Share copies the record's media URL to the system clipboard.
func Share(record video.Record) error {
	if !record.HasMedia() {
		return ErrUnavailable
	}

	if clipboardUnsupported() {
		return ErrShareUnsupported
	}

	if err := writeClipboard(record.MediaURL); err != nil {
		log.With(log.Fields{"video": record.ID}).WithError(err).Error("share failed")
		return fmt.Errorf("%w: %w", ErrShareUnsupported, err)
	}

	return nil
}

var startWith = open.StartWith

// Play opens the record's media with the configured player, or the system handler when none is set.
func Play(record video.Record) error {
	if !record.HasMedia() {
		return ErrUnavailable
	}

	if err := startWith(record.MediaURL, viper.GetString(key.Player)); err != nil {
		log.With(log.Fields{"video": record.ID}).WithError(err).Error("play failed")
		return err
	}

	return nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/video"
)

// LoadRecords restores the cached master list as raw records, to be normalized again on ingest
// so that a cache written by an older build still yields complete records.
// Any failure, and an empty list, is reported as a miss.
func LoadRecords(ctx context.Context, s Store) ([]video.Raw, bool) {
	value, ok, err := s.Get(ctx, constant.RecordsCacheKey)
	if err != nil {
		log.WithError(err).Warn("reading record cache")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	raws, err := video.Decode(strings.NewReader(value))
	if err != nil {
		log.WithError(err).Warn("record cache is corrupt, ignoring it")
		return nil, false
	}
	if len(raws) == 0 {
		return nil, false
	}

	return raws, true
}

// SaveRecords caches the master list. Failures are logged and returned; callers may ignore them.
func SaveRecords(ctx context.Context, s Store, records []video.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode record cache: %w", err)
	}

	if err := s.Set(ctx, constant.RecordsCacheKey, string(data)); err != nil {
		log.With(log.Fields{"records": len(records), "bytes": len(data)}).
			WithError(err).
			Warn("writing record cache")
		return err
	}

	return nil
}

// LoadPage returns the persisted page number. Absent, non-numeric and non-positive values report ok=false.
func LoadPage(ctx context.Context, s Store) (page int, ok bool) {
	value, found, err := s.Get(ctx, constant.PageKey)
	if err != nil {
		log.WithError(err).Warn("reading saved page")
		return 0, false
	}
	if !found {
		return 0, false
	}

	page, err = strconv.Atoi(strings.TrimSpace(value))
	if err != nil || page < 1 {
		log.With(log.Fields{"value": value}).Warn("ignoring invalid saved page")
		return 0, false
	}

	return page, true
}

// SavePage persists page as a decimal string.
func SavePage(ctx context.Context, s Store, page int) error {
	if err := s.Set(ctx, constant.PageKey, strconv.Itoa(page)); err != nil {
		log.WithError(err).Warn("saving page")
		return err
	}
	return nil
}

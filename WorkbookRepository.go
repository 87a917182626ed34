package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/muntyanw/customer-portal/contracts"
	"github.com/xuri/excelize/v2"
	"go.etcd.io/bbolt"
)

const WorkbookCacheTTL = 5 * time.Minute

const workbookFetchTimeout = 30 * time.Second

var workbookBucket = []byte("workbooks")
var workbookMetaBucket = []byte("workbook_meta")

var sheetIdRegex = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9\-_]+)`)

var BadSheetUrlError = errors.New("bad Google Sheets URL")

var SerializerError = errors.New("invalid serialized data")

// XlsxExportUrl derives the XLSX export endpoint from a public Google Sheets
// URL.
func XlsxExportUrl(googleSheetUrl string) (string, error) {
	m := sheetIdRegex.FindStringSubmatch(googleSheetUrl)
	if m == nil {
		return "", fmt.Errorf("%q: %w", googleSheetUrl, BadSheetUrlError)
	}
	return "https://docs.google.com/spreadsheets/d/" + m[1] + "/export?format=xlsx", nil
}

// CacheMetaSerializer marshals the cache metadata record (ETag plus fetch
// unix timestamp) as a length-prefixed binary value.
type CacheMetaSerializer struct {
}

func NewCacheMetaSerializer() *CacheMetaSerializer {
	return &CacheMetaSerializer{}
}

func (s *CacheMetaSerializer) Marshal(etag string, fetchedAt int64) []byte {
	etagBytes := []byte(etag)

	serializedData := make([]byte, 0, 2+len(etagBytes)+8)

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(etagBytes)))
	serializedData = append(serializedData, etagBytes...)
	serializedData = binary.LittleEndian.AppendUint64(serializedData, uint64(fetchedAt))
	return serializedData
}

func (s *CacheMetaSerializer) Unmarshal(data []byte) (etag string, fetchedAt int64, err error) {
	if len(data) < 2 {
		return "", 0, fmt.Errorf("%w: should be more than 2 bytes (data: %v)", SerializerError, data)
	}

	etagLength := binary.LittleEndian.Uint16(data)
	if len(data) != int(etagLength)+2+8 {
		return "", 0, fmt.Errorf("%w: etag size does not match bytes amount (etagSize: %d; len: %d)", SerializerError, etagLength, len(data))
	}

	etag = string(data[2 : etagLength+2])
	fetchedAt = int64(binary.LittleEndian.Uint64(data[etagLength+2:]))
	return
}

// WorkbookRepository downloads the published price workbook with an ETag/TTL
// cache persisted in bbolt and exposes it as immutable grid snapshots. When
// the remote is unreachable the last cached copy is served; only a cold
// cache propagates the failure.
type WorkbookRepository struct {
	db         *bbolt.DB
	client     *http.Client
	exportUrl  string
	cacheKey   []byte
	serializer *CacheMetaSerializer
	ttl        time.Duration
	now        func() time.Time
}

func NewWorkbookRepository(db *bbolt.DB, googleSheetUrl string) (*WorkbookRepository, error) {
	exportUrl, err := XlsxExportUrl(googleSheetUrl)
	if err != nil {
		return nil, err
	}

	cacheKey := sha256.Sum256([]byte(exportUrl))

	return &WorkbookRepository{
		db:         db,
		client:     &http.Client{Timeout: workbookFetchTimeout},
		exportUrl:  exportUrl,
		cacheKey:   cacheKey[:],
		serializer: NewCacheMetaSerializer(),
		ttl:        WorkbookCacheTTL,
		now:        time.Now,
	}, nil
}

func (r *WorkbookRepository) ListSheets() ([]string, error) {
	workbook, err := r.openWorkbook()
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	return workbook.GetSheetList(), nil
}

func (r *WorkbookRepository) GetGrid(sheetName string) (*contracts.Grid, error) {
	workbook, err := r.openWorkbook()
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	index, err := workbook.GetSheetIndex(sheetName)
	if err != nil || index < 0 {
		return nil, fmt.Errorf("%s: %w", sheetName, contracts.SheetNotFoundError)
	}

	rows, err := workbook.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}

	mergedCells, err := workbook.GetMergeCells(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read merged cells of %s: %w", sheetName, err)
	}

	merges := make([]contracts.MergedRange, 0, len(mergedCells))
	for _, merged := range mergedCells {
		minCol, minRow, startErr := excelize.CellNameToCoordinates(merged.GetStartAxis())
		maxCol, maxRow, endErr := excelize.CellNameToCoordinates(merged.GetEndAxis())
		if startErr != nil || endErr != nil {
			continue
		}
		merges = append(merges, contracts.MergedRange{
			MinRow: minRow, MinCol: minCol,
			MaxRow: maxRow, MaxCol: maxCol,
		})
	}

	return &contracts.Grid{Rows: rows, Merges: merges}, nil
}

func (r *WorkbookRepository) openWorkbook() (*excelize.File, error) {
	content, err := r.fetch()
	if err != nil {
		return nil, err
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return workbook, nil
}

func (r *WorkbookRepository) fetch() ([]byte, error) {
	var cached []byte
	var etag string
	var fetchedAt int64

	_ = r.db.View(func(tx *bbolt.Tx) error {
		if bucket := tx.Bucket(workbookBucket); bucket != nil {
			if value := bucket.Get(r.cacheKey); value != nil {
				cached = append([]byte(nil), value...)
			}
		}
		if bucket := tx.Bucket(workbookMetaBucket); bucket != nil {
			if value := bucket.Get(r.cacheKey); value != nil {
				etag, fetchedAt, _ = r.serializer.Unmarshal(value)
			}
		}
		return nil
	})

	if cached != nil && r.now().Sub(time.Unix(fetchedAt, 0)) < r.ttl {
		return cached, nil
	}

	request, err := http.NewRequest(http.MethodGet, r.exportUrl, nil)
	if err != nil {
		return nil, err
	}
	if etag != "" {
		request.Header.Set("If-None-Match", etag)
	}

	response, err := r.client.Do(request)
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, fmt.Errorf("%w: %v", contracts.WorkbookUnavailableError, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotModified && cached != nil {
		_ = r.storeMeta(etag)
		return cached, nil
	}

	if response.StatusCode != http.StatusOK {
		if cached != nil {
			return cached, nil
		}
		return nil, fmt.Errorf("%w: unexpected status %d", contracts.WorkbookUnavailableError, response.StatusCode)
	}

	content, err := io.ReadAll(response.Body)
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, fmt.Errorf("%w: %v", contracts.WorkbookUnavailableError, err)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		bucket, bucketErr := tx.CreateBucketIfNotExists(workbookBucket)
		if bucketErr != nil {
			return bucketErr
		}
		if putErr := bucket.Put(r.cacheKey, content); putErr != nil {
			return putErr
		}

		metaBucket, bucketErr := tx.CreateBucketIfNotExists(workbookMetaBucket)
		if bucketErr != nil {
			return bucketErr
		}
		return metaBucket.Put(r.cacheKey, r.serializer.Marshal(response.Header.Get("ETag"), r.now().Unix()))
	})
	if err != nil {
		return nil, err
	}

	return content, nil
}

func (r *WorkbookRepository) storeMeta(etag string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(workbookMetaBucket)
		if err != nil {
			return err
		}
		return bucket.Put(r.cacheKey, r.serializer.Marshal(etag, r.now().Unix()))
	})
}

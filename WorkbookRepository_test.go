package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/muntyanw/customer-portal/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.etcd.io/bbolt"
)

func _createTmpDb() (*bbolt.DB, func()) {
	f, _ := os.CreateTemp("", "db_*.db")
	os.Remove(f.Name())

	db, dbErr := bbolt.Open(f.Name(), 0600, nil)
	if dbErr != nil {
		panic(dbErr)
	}

	return db, func() {
		db.Close()
		os.Remove(f.Name())
	}
}

func _buildWorkbookContent() []byte {
	workbook := excelize.NewFile()
	defer workbook.Close()

	workbook.SetSheetName("Sheet1", "Фальші")
	_ = workbook.SetCellValue("Фальші", "A1", "Фальш-ролети, біла система")
	_ = workbook.MergeCell("Фальші", "A1", "N1")
	_ = workbook.SetCellValue("Фальші", "A2", "Тканина")
	_ = workbook.SetCellValue("Фальші", "B2", "Висота рулону")
	_ = workbook.SetCellValue("Фальші", "C2", "Габаритна висота до")
	_ = workbook.SetCellValue("Фальші", "D2", "Ширина тканини")
	_ = workbook.SetCellValue("Фальші", "D3", "До 400мм")
	_ = workbook.SetCellValue("Фальші", "A4", "Screen")
	_ = workbook.SetCellValue("Фальші", "B4", 2000)
	_ = workbook.SetCellValue("Фальші", "C4", 1800)
	_ = workbook.SetCellValue("Фальші", "D4", 10)

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		panic(err)
	}
	return buffer.Bytes()
}

// _workbookServer serves a fixed workbook with ETag support and counts the
// requests it actually answered.
func _workbookServer(content []byte, etag string, requests *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		if etag != "" && r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
		_, _ = w.Write(content)
	}))
}

func _testWorkbookRepository(t *testing.T, db *bbolt.DB, server *httptest.Server) *WorkbookRepository {
	repository, err := NewWorkbookRepository(db, "https://docs.google.com/spreadsheets/d/abc123/edit#gid=0")
	assert.NoError(t, err)

	repository.exportUrl = server.URL
	repository.client = server.Client()
	return repository
}

func TestXlsxExportUrl(t *testing.T) {
	t.Run("derives the export endpoint", func(t *testing.T) {
		url, err := XlsxExportUrl("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0")

		assert.NoError(t, err)
		assert.Equal(t, "https://docs.google.com/spreadsheets/d/1AbC-d_9/export?format=xlsx", url)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		_, err := XlsxExportUrl("https://example.com/prices.xlsx")

		assert.ErrorIs(t, err, BadSheetUrlError)
	})
}

func TestCacheMetaSerializer(t *testing.T) {
	serializer := NewCacheMetaSerializer()

	t.Run("round-trip", func(t *testing.T) {
		data := serializer.Marshal(`"etag-value"`, 1700000000)

		etag, fetchedAt, err := serializer.Unmarshal(data)

		assert.NoError(t, err)
		assert.Equal(t, `"etag-value"`, etag)
		assert.Equal(t, int64(1700000000), fetchedAt)
	})

	t.Run("empty etag", func(t *testing.T) {
		data := serializer.Marshal("", 42)

		etag, fetchedAt, err := serializer.Unmarshal(data)

		assert.NoError(t, err)
		assert.Empty(t, etag)
		assert.Equal(t, int64(42), fetchedAt)
	})

	t.Run("too short", func(t *testing.T) {
		_, _, err := serializer.Unmarshal([]byte{1})

		assert.ErrorIs(t, err, SerializerError)
	})

	t.Run("length mismatch", func(t *testing.T) {
		data := serializer.Marshal("etag", 42)

		_, _, err := serializer.Unmarshal(data[:len(data)-1])

		assert.ErrorIs(t, err, SerializerError)
	})
}

func TestWorkbookRepository(t *testing.T) {
	content := _buildWorkbookContent()

	t.Run("lists worksheet names", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		requests := 0
		server := _workbookServer(content, `"v1"`, &requests)
		defer server.Close()

		repository := _testWorkbookRepository(t, db, server)

		sheets, err := repository.ListSheets()

		assert.NoError(t, err)
		assert.Equal(t, []string{"Фальші"}, sheets)
	})

	t.Run("grids carry cell text and merged ranges", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		requests := 0
		server := _workbookServer(content, `"v1"`, &requests)
		defer server.Close()

		repository := _testWorkbookRepository(t, db, server)

		grid, err := repository.GetGrid("Фальші")

		assert.NoError(t, err)
		assert.Equal(t, "Фальш-ролети, біла система", grid.Cell(1, 1))
		assert.Equal(t, "Screen", grid.Cell(4, 1))
		assert.Contains(t, grid.Merges, contracts.MergedRange{MinRow: 1, MinCol: 1, MaxRow: 1, MaxCol: 14})
	})

	t.Run("unknown worksheet", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		requests := 0
		server := _workbookServer(content, `"v1"`, &requests)
		defer server.Close()

		repository := _testWorkbookRepository(t, db, server)

		grid, err := repository.GetGrid("Немає такого")

		assert.Nil(t, grid)
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("cache hit within the TTL skips the network", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		requests := 0
		server := _workbookServer(content, `"v1"`, &requests)
		defer server.Close()

		repository := _testWorkbookRepository(t, db, server)

		_, err := repository.ListSheets()
		assert.NoError(t, err)
		_, err = repository.ListSheets()
		assert.NoError(t, err)

		assert.Equal(t, 1, requests)
	})

	t.Run("expired cache revalidates with the etag", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		requests := 0
		server := _workbookServer(content, `"v1"`, &requests)
		defer server.Close()

		repository := _testWorkbookRepository(t, db, server)

		now := time.Now()
		repository.now = func() time.Time { return now }

		_, err := repository.ListSheets()
		assert.NoError(t, err)

		now = now.Add(WorkbookCacheTTL + time.Second)

		_, err = repository.ListSheets()
		assert.NoError(t, err)

		// the second round trip is answered with 304, not a re-download
		assert.Equal(t, 2, requests)

		_, err = repository.ListSheets()
		assert.NoError(t, err)
		assert.Equal(t, 2, requests)
	})

	t.Run("stale cache serves through an outage", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		requests := 0
		server := _workbookServer(content, `"v1"`, &requests)

		repository := _testWorkbookRepository(t, db, server)

		now := time.Now()
		repository.now = func() time.Time { return now }

		_, err := repository.ListSheets()
		assert.NoError(t, err)

		server.Close()
		now = now.Add(WorkbookCacheTTL + time.Second)

		sheets, err := repository.ListSheets()

		assert.NoError(t, err)
		assert.Equal(t, []string{"Фальші"}, sheets)
	})

	t.Run("cold cache propagates the outage", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		requests := 0
		server := _workbookServer(content, `"v1"`, &requests)
		repository := _testWorkbookRepository(t, db, server)
		server.Close()

		sheets, err := repository.ListSheets()

		assert.Nil(t, sheets)
		assert.ErrorIs(t, err, contracts.WorkbookUnavailableError)
	})

	t.Run("cold cache propagates an error status", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		repository := _testWorkbookRepository(t, db, server)

		_, err := repository.ListSheets()

		assert.ErrorIs(t, err, contracts.WorkbookUnavailableError)
	})
}

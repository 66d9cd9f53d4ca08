package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/config"
	"go-pm/internal/features/audit"
	"go-pm/internal/features/entity"
	"go-pm/internal/features/record"
	"go-pm/pkg/dataview"

	"github.com/d5/tengo/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// exportRowLimit bounds how many records a single export pulls.
const exportRowLimit = 100000

// RecordLister is the slice of the record service the export pipeline needs.
type RecordLister interface {
	ListRecords(ctx context.Context, kind entity.Kind, filters map[string]string, page, limit int64, sortBy, sortOrder string) (*record.ListResult, error)
}

type ExportService interface {
	CreateExport(ctx context.Context, req ExportRequest) (*ExportJob, error)
	ListHistory(ctx context.Context) ([]ExportJob, error)
	ResolveDownload(ctx context.Context, token string) (*ExportJob, error)
}

type ExportServiceImpl struct {
	Repo         ExportRepository
	Records      RecordLister
	Catalog      *entity.Catalog
	AuditService audit.AuditService
	Config       *config.Config
	Logger       *zap.Logger
}

func NewExportService(
	repo ExportRepository,
	records RecordLister,
	catalog *entity.Catalog,
	auditService audit.AuditService,
	cfg *config.Config,
	logger *zap.Logger,
) ExportService {
	return &ExportServiceImpl{
		Repo:         repo,
		Records:      records,
		Catalog:      catalog,
		AuditService: auditService,
		Config:       cfg,
		Logger:       logger,
	}
}

func (s *ExportServiceImpl) CreateExport(ctx context.Context, req ExportRequest) (*ExportJob, error) {
	kind, err := entity.ParseKind(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Format != "csv" && req.Format != "excel" {
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}

	columns, err := s.resolveColumns(kind, req.Columns)
	if err != nil {
		return nil, err
	}

	filters := req.Filters
	if !req.IncludeFilters {
		filters = nil
	}

	result, err := s.Records.ListRecords(ctx, kind, filters, 1, exportRowLimit, "", "desc")
	if err != nil {
		return nil, err
	}

	table := s.buildTable(columns, result.Data)
	if req.IncludeFilters {
		table = append(table, filterSummary(filters)...)
	}

	var content []byte
	var ext string
	switch req.Format {
	case "csv":
		content, err = writeCSV(table)
		ext = "csv"
	case "excel":
		content, err = writeExcel(columns, table)
		ext = "xlsx"
	}
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	filename := fmt.Sprintf("%s_export_%s.%s", kind, time.Now().Format("20060102_150405"), ext)

	if err := os.MkdirAll(s.Config.ExportDir, 0o755); err != nil {
		return nil, err
	}
	filePath := filepath.Join(s.Config.ExportDir, token+"_"+filename)
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return nil, err
	}

	job := &ExportJob{
		ID:             primitive.NewObjectID(),
		Type:           string(kind),
		Format:         req.Format,
		Columns:        columnKeys(columns),
		IncludeFilters: req.IncludeFilters,
		Filters:        filters,
		Filename:       filename,
		Token:          token,
		FilePath:       filePath,
		RowCount:       len(result.Data),
		CreatedAt:      time.Now(),
	}
	if userID, ok := ctx.Value(common_models.UserIDKey).(string); ok {
		job.RequestedBy = userID
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		// The file is orphaned but the retention sweep will not find it; remove now.
		os.Remove(filePath)
		return nil, err
	}

	job.DownloadURL = s.downloadURL(token)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionExport, string(kind), job.ID.Hex(), map[string]common_models.Change{
		"export": {New: fmt.Sprintf("%s (%d rows, %s)", filename, job.RowCount, req.Format)},
	})

	s.Logger.Info("export generated",
		zap.String("kind", string(kind)),
		zap.String("format", req.Format),
		zap.Int("rows", job.RowCount),
		zap.String("filename", filename))

	return job, nil
}

func (s *ExportServiceImpl) ListHistory(ctx context.Context) ([]ExportJob, error) {
	jobs, err := s.Repo.List(ctx, dataview.HistoryCap)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		jobs[i].DownloadURL = s.downloadURL(jobs[i].Token)
	}
	return jobs, nil
}

func (s *ExportServiceImpl) ResolveDownload(ctx context.Context, token string) (*ExportJob, error) {
	return s.Repo.FindByToken(ctx, token)
}

func (s *ExportServiceImpl) downloadURL(token string) string {
	return fmt.Sprintf("%s/%s/download", s.Config.ExportURL, token)
}

// resolveColumns validates a requested column selection against the kind's
// catalog and returns descriptors in catalog order. An empty selection means
// every column.
func (s *ExportServiceImpl) resolveColumns(kind entity.Kind, requested []string) ([]dataview.Column, error) {
	catalogCols := s.Catalog.ExportColumns(kind)
	if len(requested) == 0 {
		return catalogCols, nil
	}

	wanted := make(map[string]bool, len(requested))
	for _, key := range requested {
		if _, ok := s.Catalog.Column(kind, key); !ok {
			return nil, fmt.Errorf("unknown column %q for type %s", key, kind)
		}
		wanted[key] = true
	}

	var cols []dataview.Column
	for _, col := range catalogCols {
		if wanted[col.Key] {
			cols = append(cols, col)
		}
	}
	return cols, nil
}

// buildTable renders records into rows of display strings, header first.
func (s *ExportServiceImpl) buildTable(columns []dataview.Column, records []map[string]any) [][]string {
	table := make([][]string, 0, len(records)+1)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Label
	}
	table = append(table, header)

	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			val := formatValue(rec[col.Key])
			if col.Format != "" {
				if formatted, err := applyFormat(col.Format, rec[col.Key]); err == nil {
					val = formatted
				} else {
					s.Logger.Debug("column format expression failed",
						zap.String("column", col.Key), zap.Error(err))
				}
			}
			row[i] = val
		}
		table = append(table, row)
	}
	return table
}

// applyFormat evaluates a column format expression against one cell value.
func applyFormat(expr string, val any) (string, error) {
	script := tengo.NewScript([]byte("out := " + expr))
	if err := script.Add("value", tengoValue(val)); err != nil {
		return "", err
	}

	compiled, err := script.RunContext(context.Background())
	if err != nil {
		return "", err
	}
	return compiled.Get("out").String(), nil
}

func tengoValue(val any) any {
	switch v := val.(type) {
	case nil:
		return ""
	case int, int64, float64, string, bool:
		return v
	case int32:
		return int64(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case primitive.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case primitive.ObjectID:
		return v.Hex()
	case map[string]interface{}:
		if name, ok := v["name"]; ok {
			return fmt.Sprintf("%v", name)
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// filterSummary appends the active filters under the data so a reader of the
// file knows which slice they are looking at. Names are sorted so identical
// requests produce identical files.
func filterSummary(filters map[string]string) [][]string {
	rows := [][]string{{}, {"Active Filters"}}
	if len(filters) == 0 {
		rows = append(rows, []string{"(none)"})
		return rows
	}

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rows = append(rows, []string{name, filters[name]})
	}
	return rows
}

func writeCSV(table [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, row := range table {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeExcel(columns []dataview.Column, table [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Export"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for rowIdx, row := range table {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			f.SetCellValue(sheetName, cell, val)
			if rowIdx == 0 {
				f.SetCellStyle(sheetName, cell, cell, headerStyle)
			}
		}
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func columnKeys(columns []dataview.Column) []string {
	keys := make([]string, len(columns))
	for i, col := range columns {
		keys[i] = col.Key
	}
	return keys
}

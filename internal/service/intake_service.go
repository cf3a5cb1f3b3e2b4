package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tejukargal/smp-salary-board/internal/domain"
	"github.com/tejukargal/smp-salary-board/internal/websocket"
)

// IntakeFile is one uploaded document forwarded to the processor.
type IntakeFile struct {
	Name    string
	Content io.Reader
}

// ProcessorRecord mirrors the extraction service's record shape. Money
// fields decode through decimal so fractional amounts survive intact.
type ProcessorRecord struct {
	Month             string          `json:"Month"`
	Year              string          `json:"Year"`
	EmployeeID        string          `json:"EMP No"`
	Name              string          `json:"Name"`
	Designation       string          `json:"Designation"`
	Group             string          `json:"Group"`
	NextIncrementDate string          `json:"Next Increment Date"`
	BankAccount       string          `json:"Bank A/C Number"`
	Basic             decimal.Decimal `json:"Basic"`
	DA                decimal.Decimal `json:"DA"`
	HRA               decimal.Decimal `json:"HRA"`
	IR                decimal.Decimal `json:"IR"`
	SFN               decimal.Decimal `json:"SFN"`
	SpayTypist        decimal.Decimal `json:"SPAY-TYPIST"`
	P                 decimal.Decimal `json:"P"`
	IT                decimal.Decimal `json:"IT"`
	PT                decimal.Decimal `json:"PT"`
	GSLIC             decimal.Decimal `json:"GSLIC"`
	LIC               decimal.Decimal `json:"LIC"`
	FBF               decimal.Decimal `json:"FBF"`
	GrossSalary       decimal.Decimal `json:"Gross Salary"`
	TotalDeductions   decimal.Decimal `json:"Total Deductions"`
	NetSalary         decimal.Decimal `json:"Net Salary"`
}

// ProcessorResponse is the extraction service's reply envelope.
type ProcessorResponse struct {
	Success        bool              `json:"success"`
	Data           []ProcessorRecord `json:"data"`
	ProcessedFiles []string          `json:"processed_files"`
	FailedFiles    []string          `json:"failed_files"`
	TotalRecords   int               `json:"total_records"`
	Error          string            `json:"error"`
}

// RecordSource sends uploaded documents somewhere that can turn them into
// pay records.
type RecordSource interface {
	Process(ctx context.Context, files []IntakeFile) (*ProcessorResponse, error)
}

// ProcessorClient calls the external extraction service over HTTP.
type ProcessorClient struct {
	baseURL string
	client  *http.Client
}

// NewProcessorClient creates a new ProcessorClient
func NewProcessorClient(baseURL string, timeout time.Duration) *ProcessorClient {
	return &ProcessorClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Process forwards the files as a multipart request and decodes the reply.
// A transport or decode failure is returned as an error; a success:false
// reply is returned as a response, the caller decides what it means.
func (p *ProcessorClient) Process(ctx context.Context, files []IntakeFile) (*ProcessorResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, fmt.Errorf("create form file %s: %w", f.Name, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("copy file %s: %w", f.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/process-pdfs", &body)
	if err != nil {
		return nil, fmt.Errorf("build processor request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("processor returned status %d", resp.StatusCode)
	}

	var decoded ProcessorResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode processor response: %w", err)
	}
	return &decoded, nil
}

// IntakeResult reports the outcome of a successful batch.
type IntakeResult struct {
	BatchID        string   `json:"batchId"`
	TotalRecords   int      `json:"totalRecords"`
	ProcessedFiles []string `json:"processedFiles"`
	FailedFiles    []string `json:"failedFiles"`
}

// IntakeService runs the upload boundary: it hands documents to the
// processor and, when extraction succeeds, replaces the ledger snapshot
// wholesale. Any failure leaves the previous snapshot untouched.
type IntakeService struct {
	source    RecordSource
	repo      domain.RecordRepository
	publisher websocket.EventPublisher
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(source RecordSource, repo domain.RecordRepository, publisher websocket.EventPublisher) *IntakeService {
	return &IntakeService{source: source, repo: repo, publisher: publisher}
}

// Ingest processes an upload batch end to end.
func (s *IntakeService) Ingest(ctx context.Context, files []IntakeFile) (*IntakeResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}

	resp, err := s.source.Process(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIntakeFailed, err)
	}
	if !resp.Success {
		if resp.Error != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrIntakeFailed, resp.Error)
		}
		return nil, domain.ErrIntakeFailed
	}
	if len(resp.Data) == 0 {
		return nil, domain.ErrNoRecords
	}

	records := make([]domain.PayRecord, 0, len(resp.Data))
	for _, pr := range resp.Data {
		records = append(records, toPayRecord(pr))
	}
	s.repo.Replace(records)

	batchID := uuid.New().String()
	s.publisher.Publish(websocket.LedgerReloaded(batchID, len(records)))

	log.Info().
		Str("batch_id", batchID).
		Int("record_count", len(records)).
		Int("processed_files", len(resp.ProcessedFiles)).
		Int("failed_files", len(resp.FailedFiles)).
		Msg("Ledger snapshot replaced")

	return &IntakeResult{
		BatchID:        batchID,
		TotalRecords:   len(records),
		ProcessedFiles: resp.ProcessedFiles,
		FailedFiles:    resp.FailedFiles,
	}, nil
}

func toPayRecord(pr ProcessorRecord) domain.PayRecord {
	year, _ := strconv.Atoi(pr.Year)
	return domain.PayRecord{
		Name:              pr.Name,
		EmployeeID:        pr.EmployeeID,
		Designation:       pr.Designation,
		Department:        pr.Group,
		Month:             pr.Month,
		Year:              year,
		BasicPay:          pr.Basic,
		GrossSalary:       pr.GrossSalary,
		TotalDeductions:   pr.TotalDeductions,
		NetSalary:         pr.NetSalary,
		BankAccount:       pr.BankAccount,
		NextIncrementDate: pr.NextIncrementDate,
		Allowances: map[string]decimal.Decimal{
			"DA":          pr.DA,
			"HRA":         pr.HRA,
			"IR":          pr.IR,
			"SFN":         pr.SFN,
			"SPAY-TYPIST": pr.SpayTypist,
			"P":           pr.P,
		},
		Deductions: map[string]decimal.Decimal{
			"IT":    pr.IT,
			"PT":    pr.PT,
			"GSLIC": pr.GSLIC,
			"LIC":   pr.LIC,
			"FBF":   pr.FBF,
		},
	}
}

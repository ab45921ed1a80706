package app

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/solidscan/domain"
)

// SolidUseCase orchestrates the SOLID analysis workflow
type SolidUseCase struct {
	service    domain.SolidService
	fileHelper *FileHelper
}

// NewSolidUseCase creates a new SOLID use case
func NewSolidUseCase(service domain.SolidService) *SolidUseCase {
	return &SolidUseCase{
		service:    service,
		fileHelper: NewFileHelper(),
	}
}

// Execute performs the complete SOLID analysis workflow
func (uc *SolidUseCase) Execute(ctx context.Context, req domain.SolidRequest) (*domain.SolidResponse, error) {
	// Validate input
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	// Resolve file paths
	files, err := ResolveFilePaths(
		uc.fileHelper,
		req.Paths,
		req.Recursive,
		req.IncludePatterns,
		req.ExcludePatterns,
	)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect files", err)
	}

	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no C# files found in the specified paths", nil)
	}

	// Update request with collected files
	req.Paths = files

	// Perform analysis
	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, domain.NewAnalysisError("SOLID analysis failed", err)
	}

	return response, nil
}

// AnalyzeFile analyzes a single file
func (uc *SolidUseCase) AnalyzeFile(ctx context.Context, filePath string, req domain.SolidRequest) (*domain.SolidResponse, error) {
	// Validate file
	if !uc.fileHelper.IsValidCSharpFile(filePath) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a valid C# file: %s", filePath), nil)
	}

	// Check if file exists
	exists, err := uc.fileHelper.FileExists(filePath)
	if err != nil {
		return nil, domain.NewFileNotFoundError(filePath, err)
	}
	if !exists {
		return nil, domain.NewFileNotFoundError(filePath, fmt.Errorf("file does not exist"))
	}

	// Update request with single file path
	req.Paths = []string{filePath}

	// Perform analysis
	return uc.service.Analyze(ctx, req)
}

// validateRequest validates the analysis request
func (uc *SolidUseCase) validateRequest(req domain.SolidRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML:
	case "":
		// default applied downstream
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	return nil
}

// SolidUseCaseBuilder provides a builder pattern for creating SolidUseCase
type SolidUseCaseBuilder struct {
	service    domain.SolidService
	fileHelper *FileHelper
}

// NewSolidUseCaseBuilder creates a new builder
func NewSolidUseCaseBuilder() *SolidUseCaseBuilder {
	return &SolidUseCaseBuilder{}
}

// WithService sets the SOLID service
func (b *SolidUseCaseBuilder) WithService(service domain.SolidService) *SolidUseCaseBuilder {
	b.service = service
	return b
}

// WithFileHelper sets the file helper
func (b *SolidUseCaseBuilder) WithFileHelper(fileHelper *FileHelper) *SolidUseCaseBuilder {
	b.fileHelper = fileHelper
	return b
}

// Build creates the SolidUseCase with the configured dependencies
func (b *SolidUseCaseBuilder) Build() (*SolidUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("SOLID service is required")
	}

	uc := &SolidUseCase{
		service:    b.service,
		fileHelper: b.fileHelper,
	}

	if uc.fileHelper == nil {
		uc.fileHelper = NewFileHelper()
	}

	return uc, nil
}

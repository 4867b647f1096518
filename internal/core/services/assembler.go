package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/bindery-cli/internal/core/domain"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bindery-cli/internal/logger"
)

// Ensure AssemblerService implements the interface.
var _ driving.Assembler = (*AssemblerService)(nil)

// AssemblerService selects, orders, and concatenates pages across PDF
// documents. All operations are sequential and fail on the first
// error; document handles are scoped to each DocumentIO call.
type AssemblerService struct {
	docIO driven.DocumentIO
}

// NewAssemblerService creates a new assembler service.
func NewAssemblerService(docIO driven.DocumentIO) *AssemblerService {
	return &AssemblerService{docIO: docIO}
}

// listPDFs returns the PDF files directly inside dir, sorted
// lexicographically by filename. Directory enumeration order is
// platform-dependent, so the sort is explicit.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ExtractPage extracts one page from every PDF in a directory.
func (s *AssemblerService) ExtractPage(ctx context.Context, req driving.ExtractRequest) ([]string, error) {
	files, err := listPDFs(req.InputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Debug("extracting page %d from %d documents in %s", req.PageNumber, len(files), req.InputDir)

	var created []string
	for _, file := range files {
		count, err := s.docIO.PageCount(ctx, file)
		if err != nil {
			return nil, err
		}

		page, err := domain.ResolveIndex(req.PageNumber, count)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		outPath := filepath.Join(req.OutputDir, req.Prefix+filepath.Base(file))
		if err := s.docIO.CopyPages(ctx, file, outPath, []int{page}); err != nil {
			return nil, err
		}

		logger.Debug("created %s", outPath)
		created = append(created, outPath)
	}

	return created, nil
}

// CombineDir concatenates every PDF in a directory into one document.
func (s *AssemblerService) CombineDir(ctx context.Context, req driving.CombineRequest) (string, error) {
	files, err := listPDFs(req.InputDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrEmptyDirectory, req.InputDir)
	}

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Debug("combining %d documents from %s", len(files), req.InputDir)

	outPath := filepath.Join(req.OutputDir, req.OutputName)
	if err := s.docIO.Merge(ctx, files, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// Slice copies a contiguous page range of one document.
func (s *AssemblerService) Slice(ctx context.Context, req driving.SliceRequest) (string, error) {
	count, err := s.docIO.PageCount(ctx, req.InputFile)
	if err != nil {
		return "", err
	}

	rng, err := domain.ResolveRange(req.StartPage, req.EndPage, count)
	if err != nil {
		return "", fmt.Errorf("%s: %w", req.InputFile, err)
	}

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Debug("slicing pages [%d, %d) of %s", rng.Start, rng.End, req.InputFile)

	outPath := filepath.Join(req.OutputDir, req.OutputName)
	if err := s.docIO.CopyPages(ctx, req.InputFile, outPath, rng.Pages()); err != nil {
		return "", err
	}
	return outPath, nil
}

// CombineList concatenates an explicit ordered list of files.
func (s *AssemblerService) CombineList(ctx context.Context, req driving.CombineListRequest) (string, error) {
	if len(req.InputFiles) == 0 {
		return "", domain.ErrEmptyList
	}

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Debug("combining %d listed documents", len(req.InputFiles))

	outPath := filepath.Join(req.OutputDir, req.OutputName)
	if err := s.docIO.Merge(ctx, req.InputFiles, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// CompileFinal assembles a final signed agreement: the signature page
// of every signed copy is extracted and collected, then interleaved
// with the clean agreement's pages according to the recipe.
func (s *AssemblerService) CompileFinal(ctx context.Context, req driving.CompileRequest) (string, error) {
	cleanCount, err := s.docIO.PageCount(ctx, req.CleanPath)
	if err != nil {
		return "", err
	}

	investorSig, err := domain.ResolveIndex(req.InvestorSigPage, cleanCount)
	if err != nil {
		return "", fmt.Errorf("investor signature page in %s: %w", req.CleanPath, err)
	}
	managerSig, err := domain.ResolveIndex(req.ManagerSigPage, cleanCount)
	if err != nil {
		return "", fmt.Errorf("manager signature page in %s: %w", req.CleanPath, err)
	}

	recipe := domain.DefaultRecipe(investorSig, managerSig)
	if req.Recipe != nil {
		recipe = *req.Recipe
	}
	if err := recipe.Validate(); err != nil {
		return "", err
	}

	signed, err := listPDFs(req.SignedDir)
	if err != nil {
		return "", err
	}
	if len(signed) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrEmptyDirectory, req.SignedDir)
	}

	tmpDir, err := os.MkdirTemp("", "bindery-compile-*")
	if err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	logger.Section("collecting signature pages")

	// Pull each signer's signature page out of their signed copy.
	var sigPages []string
	for i, copyPath := range signed {
		count, err := s.docIO.PageCount(ctx, copyPath)
		if err != nil {
			return "", err
		}
		page, err := domain.ResolveIndex(req.InvestorSigPage, count)
		if err != nil {
			return "", fmt.Errorf("%w: %s has no page %d", domain.ErrMissingSignaturePage, copyPath, req.InvestorSigPage)
		}

		sigPath := filepath.Join(tmpDir, fmt.Sprintf("sig-%03d.pdf", i))
		if err := s.docIO.CopyPages(ctx, copyPath, sigPath, []int{page}); err != nil {
			return "", err
		}
		logger.Debug("collected signature page from %s", copyPath)
		sigPages = append(sigPages, sigPath)
	}

	sigsPath := filepath.Join(tmpDir, "signatures.pdf")
	if err := s.docIO.Merge(ctx, sigPages, sigsPath); err != nil {
		return "", err
	}
	sigsCount, err := s.docIO.PageCount(ctx, sigsPath)
	if err != nil {
		return "", err
	}

	logger.Section("assembling final document")

	// Materialise each non-empty recipe segment, then merge in order.
	var components []string
	for i, seg := range recipe.Segments {
		srcPath, srcCount := req.CleanPath, cleanCount
		if seg.Source == domain.SourceSignatures {
			srcPath, srcCount = sigsPath, sigsCount
		}

		rng, ok, err := seg.Resolve(srcCount)
		if err != nil {
			return "", fmt.Errorf("recipe segment %d: %w", i, err)
		}
		if !ok {
			logger.Debug("recipe segment %d is empty, skipping", i)
			continue
		}

		segPath := filepath.Join(tmpDir, fmt.Sprintf("segment-%03d.pdf", i))
		if err := s.docIO.CopyPages(ctx, srcPath, segPath, rng.Pages()); err != nil {
			return "", err
		}
		components = append(components, segPath)
	}
	if len(components) == 0 {
		return "", fmt.Errorf("%w: every segment resolved empty", domain.ErrInvalidRecipe)
	}

	outName := req.OutputName
	if outName == "" {
		base := filepath.Base(req.CleanPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outName = stem + " FINAL COMBINED.pdf"
	}

	outPath := filepath.Join(filepath.Dir(req.CleanPath), outName)
	if err := s.docIO.Merge(ctx, components, outPath); err != nil {
		return "", err
	}

	logger.Info("final combined document: %s", outPath)
	return outPath, nil
}

package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/filepane/filepane/internal/clipboard"
	"github.com/filepane/filepane/internal/fileops"
	"github.com/filepane/filepane/internal/history"
	"github.com/filepane/filepane/internal/model"
)

// Service holds the explorer session state: current directory, navigation
// history, and the internal clipboard. All operations are synchronous and
// run on the caller's goroutine; entries of a batch are processed strictly
// in order.
type Service struct {
	fs      fileops.FS
	board   clipboard.Board
	current string
	history *history.History
	clip    *model.ClipboardEntry
	log     zerolog.Logger
}

// NewService creates an explorer session rooted at startDir.
func NewService(fs fileops.FS, board clipboard.Board, startDir string, log zerolog.Logger) *Service {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		abs = startDir
	}

	return &Service{
		fs:      fs,
		board:   board,
		current: abs,
		history: history.New(abs),
		clip:    &model.ClipboardEntry{},
		log:     log,
	}
}

// CurrentPath returns the directory the session is showing.
func (s *Service) CurrentPath() string {
	return s.current
}

// ClipboardEntry exposes the internal clipboard state.
func (s *Service) ClipboardEntry() *model.ClipboardEntry {
	return s.clip
}

// Navigate switches the session to the given directory and records it in
// the history.
func (s *Service) Navigate(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if !s.fs.IsDir(abs) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, abs)
	}

	s.current = abs
	s.history.Visit(abs)
	s.log.Debug().Str("path", abs).Msg("navigated")
	return nil
}

// Back steps to the previously visited directory. Returns false when there
// is no previous entry or it no longer exists.
func (s *Service) Back() (string, bool) {
	path, ok := s.history.Back()
	if !ok {
		return "", false
	}
	if !s.fs.IsDir(path) {
		s.log.Warn().Str("path", path).Msg("history entry vanished, staying put")
		return "", false
	}
	s.current = path
	return path, true
}

// Up navigates to the parent directory. Returns false at the filesystem
// root.
func (s *Service) Up() (string, bool) {
	parent := filepath.Dir(s.current)
	if parent == s.current {
		return "", false
	}
	if err := s.Navigate(parent); err != nil {
		return "", false
	}
	return parent, true
}

// ListCurrent reads the current directory into file entries, directories
// first, each group sorted by name.
func (s *Service) ListCurrent(showHidden bool) ([]model.FileEntry, error) {
	dirEntries, err := os.ReadDir(s.current)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", s.current, err)
	}

	var entries []model.FileEntry
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}
		fe := model.NewFileEntry(s.current, info)
		if !showHidden && fe.IsHidden() {
			continue
		}
		entries = append(entries, fe)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

// Stage replaces the internal clipboard with the selection and serializes
// the paths as file URLs into the OS clipboard. No filesystem mutation
// occurs. Returns the number of staged entries; zero means nothing was
// selected and the clipboard is left untouched.
func (s *Service) Stage(paths []string, cut bool) int {
	collected := CollectSelection(paths)
	if len(collected) == 0 {
		return 0
	}

	s.clip = model.NewClipboardEntry(collected, cut)
	clipboard.StagePaths(s.board, s.clip.Paths)

	s.log.Info().
		Int("count", len(s.clip.Paths)).
		Bool("cut", cut).
		Msg("selection staged")

	return len(s.clip.Paths)
}

// Paste reconciles sources into the current directory. The OS clipboard is
// read exactly once; if it holds local file references they take priority
// over the internal clipboard and paste with copy semantics, since cut
// semantics cannot be guaranteed across applications.
func (s *Service) Paste() (*model.PasteOutcome, error) {
	destDir := s.current
	if !s.fs.IsDir(destDir) {
		return nil, ErrInvalidTarget
	}

	// Staging mirrors our own paths to the OS clipboard, so external mode
	// applies only when the clipboard holds references we did not put there.
	if external := clipboard.ReadPaths(s.board); len(external) > 0 && !s.isOwnStaging(external) {
		outcome, _ := s.pasteBatch(external, destDir, false)
		return outcome, nil
	}

	if s.clip.IsEmpty() {
		return nil, ErrEmptyClipboard
	}

	isCut := s.clip.IsCut
	outcome, succeeded := s.pasteBatch(s.clip.Snapshot(), destDir, isCut)

	if isCut {
		if outcome.AllSucceeded() {
			s.clip.Clear()
		} else {
			// Failed entries stay staged with the cut flag so the user
			// can retry.
			s.clip.DropSucceeded(succeeded)
		}
	}

	return outcome, nil
}

// isOwnStaging reports whether the OS clipboard content is exactly the set
// this session staged last, in order.
func (s *Service) isOwnStaging(external []string) bool {
	if s.clip.IsEmpty() || len(external) != len(s.clip.Paths) {
		return false
	}
	for i, p := range external {
		if p != s.clip.Paths[i] {
			return false
		}
	}
	return true
}

// pasteBatch processes every source independently; one entry's failure
// never aborts the remaining entries.
func (s *Service) pasteBatch(sources []string, destDir string, cut bool) (*model.PasteOutcome, map[string]bool) {
	outcome := &model.PasteOutcome{ID: uuid.NewString()}
	succeeded := make(map[string]bool, len(sources))

	s.log.Info().
		Str("batch", outcome.ID).
		Str("dest", destDir).
		Int("sources", len(sources)).
		Bool("cut", cut).
		Msg("paste started")

	for _, src := range sources {
		switch err := s.pasteEntry(src, destDir, cut); {
		case err == nil:
			outcome.Succeeded++
			succeeded[src] = true
		case err == errSourceVanished:
			// Already consumed elsewhere; not a failure.
			outcome.Skipped++
		default:
			outcome.Failed = append(outcome.Failed, model.FailedEntry{
				Source: src,
				Reason: err.Error(),
			})
			s.log.Warn().
				Str("batch", outcome.ID).
				Str("source", src).
				Err(err).
				Msg("paste entry failed")
		}
	}

	s.log.Info().
		Str("batch", outcome.ID).
		Int("succeeded", outcome.Succeeded).
		Int("skipped", outcome.Skipped).
		Int("failed", len(outcome.Failed)).
		Msg("paste finished")

	return outcome, succeeded
}

// errSourceVanished marks a source that disappeared before the batch
// reached it. Never surfaced to the user.
var errSourceVanished = fmt.Errorf("source vanished")

func (s *Service) pasteEntry(src, destDir string, cut bool) error {
	if !s.fs.Exists(src) {
		return errSourceVanished
	}

	base := filepath.Base(src)

	absSrc, err := filepath.Abs(src)
	if err != nil {
		absSrc = src
	}
	absDest, err := filepath.Abs(destDir)
	if err != nil {
		absDest = destDir
	}
	if absSrc == absDest {
		return fmt.Errorf("cannot paste %q into itself", base)
	}

	dest := filepath.Join(destDir, base)
	if s.fs.Exists(dest) {
		dest = filepath.Join(destDir, ResolveDestName(base, s.fs.IsDir(src)))
	}

	if !cut {
		return s.fs.Copy(src, dest)
	}

	// Cut: atomic move first, copy-then-delete as the fallback. If the
	// fallback fails the source stays in place and the fallback's error is
	// what gets reported.
	if err := s.fs.Move(src, dest); err != nil {
		s.log.Debug().Str("source", src).Err(err).Msg("move failed, trying copy+delete")
		if err := s.fs.Copy(src, dest); err != nil {
			return err
		}
		if err := s.fs.Delete(src); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes every path independently, directories recursively.
// Vanished paths are skipped silently; the attempted count covers every
// entry a removal was issued for, succeeded or not.
func (s *Service) Delete(paths []string) *model.DeleteOutcome {
	outcome := &model.DeleteOutcome{ID: uuid.NewString()}

	for _, p := range CollectSelection(paths) {
		if !s.fs.Exists(p) {
			outcome.Skipped++
			continue
		}

		outcome.Attempted++
		if err := s.fs.Delete(p); err != nil {
			outcome.Failed = append(outcome.Failed, model.FailedEntry{
				Source: p,
				Reason: err.Error(),
			})
			s.log.Warn().Str("path", p).Err(err).Msg("delete failed")
		}
	}

	s.log.Info().
		Str("batch", outcome.ID).
		Int("attempted", outcome.Attempted).
		Int("skipped", outcome.Skipped).
		Int("failed", len(outcome.Failed)).
		Msg("delete finished")

	return outcome
}

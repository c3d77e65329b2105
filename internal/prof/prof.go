package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session holds the open profile files for one CLI invocation.
// Stop must be called before the process exits or the CPU profile
// is truncated.
type Session struct {
	cpuPath string
	memPath string
	cpuFile *os.File
}

// Start begins CPU profiling if cpuPath is non-empty. The memory
// profile is captured later, in Stop, so it reflects the whole run.
func Start(cpuPath, memPath string) (*Session, error) {
	s := &Session{cpuPath: cpuPath, memPath: memPath}
	if cpuPath == "" {
		return s, nil
	}
	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	s.cpuFile = f
	return s, nil
}

// Stop finishes the CPU profile and writes the heap profile, if any
// were requested. Safe to call on a zero-work session.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := s.cpuFile.Close(); err != nil {
			return fmt.Errorf("close cpu profile: %w", err)
		}
		s.cpuFile = nil
	}
	if s.memPath == "" {
		return nil
	}
	f, err := os.Create(s.memPath)
	if err != nil {
		return fmt.Errorf("create mem profile: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write mem profile: %w", err)
	}
	return nil
}

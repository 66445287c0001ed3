package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/yaklabco/gotexlint/pkg/lint"
	"github.com/yaklabco/gotexlint/pkg/texdoc"
)

// Linter runs every enabled rule over a document. *lint.Engine satisfies it.
type Linter interface {
	RunAll(text string) *lint.Report
}

// Monitor re-checks a document each time its Trigger fires.
type Monitor struct {
	Source  SourceProvider
	Trigger Trigger
	Linter  Linter

	// OnReport receives every fresh Report. Optional.
	OnReport func(ctx context.Context, report *lint.Report)

	// OnError receives provider failures. The loop keeps running. Optional.
	OnError func(ctx context.Context, err error)

	mu       sync.Mutex
	last     string
	lastCode string
	hasLast  bool
}

// New creates a Monitor.
func New(source SourceProvider, trigger Trigger, linter Linter) *Monitor {
	return &Monitor{
		Source:  source,
		Trigger: trigger,
		Linter:  linter,
	}
}

// Check fetches the text once and lints it.
// It returns a nil Report with changed=false when the text, with comments
// stripped, equals the previously checked text.
func (m *Monitor) Check(ctx context.Context) (report *lint.Report, changed bool, err error) {
	text, err := m.Source.Text(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("fetch source: %w", err)
	}

	code := texdoc.Strip(text)

	m.mu.Lock()
	if m.hasLast && code == m.lastCode {
		m.mu.Unlock()
		return nil, false, nil
	}
	m.last = text
	m.lastCode = code
	m.hasLast = true
	m.mu.Unlock()

	return m.Linter.RunAll(text), true, nil
}

// Text returns the most recently checked text.
func (m *Monitor) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Run checks the document immediately and then after every trigger event.
// It returns nil when ctx is cancelled or the trigger's channel closes.
func (m *Monitor) Run(ctx context.Context) error {
	if m.Source == nil || m.Trigger == nil || m.Linter == nil {
		return errors.New("monitor: source, trigger and linter are required")
	}

	m.step(ctx)

	events := m.Trigger.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			m.step(ctx)
		}
	}
}

func (m *Monitor) step(ctx context.Context) {
	report, changed, err := m.Check(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if m.OnError != nil {
			m.OnError(ctx, err)
		}
		return
	}
	if changed && m.OnReport != nil {
		m.OnReport(ctx, report)
	}
}

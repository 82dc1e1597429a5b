package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/lepinkainen/squish/codec"
	"github.com/lepinkainen/squish/transform"
	"github.com/lepinkainen/squish/utils"
)

const (
	// resultLinger is how long a finished job's summary stays on screen
	// before the model returns to idle.
	resultLinger = 2 * time.Second

	pickerHeight = 10

	idleStatus = "Press 'o' to compress a file, 'd' to decompress"
)

// phase tracks where the model is in the job lifecycle. Picking and
// naming are sub-modes of idle: no job is running in either.
type phase int

const (
	phaseIdle phase = iota
	phasePicking
	phaseNaming
	phaseRunning
	phaseShowingResult
	phaseShowingError
)

// Model drives the interactive compress/decompress screen.
type Model struct {
	// Job state
	phase     phase
	direction transform.Direction
	level     codec.Level
	inputPath string
	messages  <-chan transform.Message

	// UI components
	picker filepicker.Model
	output textinput.Model
	gauge  progress.Model

	// Presentation state
	fraction   float64
	status     string
	lastResult string
	resultAt   time.Time

	// Layout
	width int

	// Control state
	quitting bool

	// start launches a job, swappable in tests
	start func(transform.Job) <-chan transform.Message

	// Version for display
	Version string
}

// NewModel creates the initial model for the interactive screen.
func NewModel(version string) Model {
	picker := filepicker.New()
	if wd, err := os.Getwd(); err == nil {
		picker.CurrentDirectory = wd
	}
	picker.AutoHeight = false
	picker.Height = pickerHeight

	output := textinput.New()
	output.Prompt = "Save as: "

	return Model{
		level:   codec.Normal,
		picker:  picker,
		output:  output,
		gauge:   progress.New(progress.WithDefaultGradient()),
		status:  idleStatus,
		start:   transform.Start,
		Version: version,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		return model, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.gauge.Width = min(msg.Width-6, 60)
		m.output.Width = min(msg.Width-16, 80)
		return m, nil

	case tickMsg:
		m = m.drainMessages()
		if m.phase == phaseShowingResult && time.Since(m.resultAt) >= resultLinger {
			m = m.dismissResult()
		}
		return m, tick()
	}

	model, cmd := m.updateSubmodel(msg)
	return model, cmd
}

// handleKey dispatches a key press based on the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseRunning:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "o", "d":
			m.status = "A job is already running, wait for it to finish"
		}
		// Level is locked while a job is running.
		return m, nil

	case phasePicking:
		switch msg.String() {
		case "esc":
			// Cancelling the picker is not an error and starts nothing.
			m.phase = phaseIdle
			m.status = "File selection cancelled"
			return m, nil
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m.updateSubmodel(msg)

	case phaseNaming:
		switch msg.String() {
		case "esc":
			m.phase = phaseIdle
			m.status = "Save cancelled"
			return m, nil
		case "enter":
			return m.startTransform()
		}
		return m.updateSubmodel(msg)

	default:
		if m.phase == phaseShowingResult {
			m = m.dismissResult()
		}
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "o":
			return m.beginPicking(transform.Compress)
		case "d":
			return m.beginPicking(transform.Decompress)
		case "up":
			m.level = m.level.Increase()
		case "down":
			m.level = m.level.Decrease()
		}
		return m, nil
	}
}

// beginPicking opens the file picker for the given direction.
func (m Model) beginPicking(direction transform.Direction) (Model, tea.Cmd) {
	m.direction = direction
	if direction == transform.Decompress {
		// The picker matches extensions by exact suffix, so list both
		// case variants.
		m.picker.AllowedTypes = []string{codec.Extension, strings.ToUpper(codec.Extension)}
		m.status = "Pick a file to decompress"
	} else {
		m.picker.AllowedTypes = nil
		m.status = "Pick a file to compress"
	}
	m.phase = phasePicking
	m.fraction = 0
	return m, m.picker.Init()
}

// updateSubmodel forwards a message to whichever component is active.
func (m Model) updateSubmodel(msg tea.Msg) (Model, tea.Cmd) {
	switch m.phase {
	case phasePicking:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		if ok, path := m.picker.DidSelectFile(msg); ok {
			model, focusCmd := m.fileSelected(path)
			return model, tea.Batch(cmd, focusCmd)
		}
		if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
			m.status = fmt.Sprintf("%s is not a %s file", filepath.Base(path), codec.Extension)
		}
		return m, cmd

	case phaseNaming:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	return m, nil
}

// fileSelected moves to the naming sub-mode with a suggested output path.
func (m Model) fileSelected(path string) (Model, tea.Cmd) {
	m.inputPath = path

	suggested := codec.CompressedName(path)
	if m.direction == transform.Decompress {
		suggested = codec.DecompressedName(path)
	}
	m.output.SetValue(suggested)
	m.output.CursorEnd()
	focusCmd := m.output.Focus()

	m.phase = phaseNaming
	m.status = fmt.Sprintf("Selected %s", filepath.Base(path))
	return m, focusCmd
}

// startTransform launches the job described by the current selection.
func (m Model) startTransform() (Model, tea.Cmd) {
	outputPath := strings.TrimSpace(m.output.Value())
	if outputPath == "" {
		m.status = "Output path cannot be empty"
		return m, nil
	}
	if filepath.Clean(outputPath) == filepath.Clean(m.inputPath) {
		m.status = "Output path must differ from the input"
		return m, nil
	}

	job := transform.Job{
		InputPath:  m.inputPath,
		OutputPath: outputPath,
		Direction:  m.direction,
		Level:      m.level,
	}
	m.messages = m.start(job)

	m.phase = phaseRunning
	m.fraction = 0
	m.lastResult = ""
	m.resultAt = time.Time{}
	m.output.Blur()

	m.status = fmt.Sprintf("%s %s", m.jobVerb(), filepath.Base(job.InputPath))
	if warning := utils.NetworkDriveWarning(job.InputPath, job.OutputPath); warning != "" {
		m.status += fmt.Sprintf(" (%s)", warning)
	}
	return m, nil
}

func (m Model) jobVerb() string {
	if m.direction == transform.Decompress {
		return "Decompressing"
	}
	return "Compressing"
}

// drainMessages applies every queued job message before the next render.
func (m Model) drainMessages() Model {
	for m.messages != nil {
		select {
		case msg, ok := <-m.messages:
			if !ok {
				m.messages = nil
				return m
			}
			m = m.apply(msg)
		default:
			return m
		}
	}
	return m
}

// apply folds one job message into the model.
func (m Model) apply(msg transform.Message) Model {
	switch msg := msg.(type) {
	case transform.Progress:
		if msg.TotalBytes > 0 {
			m.fraction = float64(msg.BytesProcessed) / float64(msg.TotalBytes)
		}

	case transform.Compressed:
		m.phase = phaseShowingResult
		m.fraction = 1.0
		m.status = "Compression complete!"
		m.lastResult = compressedSummary(msg)
		m.resultAt = time.Now()
		m.messages = nil

	case transform.Decompressed:
		m.phase = phaseShowingResult
		m.fraction = 1.0
		m.status = "Decompression complete!"
		m.lastResult = decompressedSummary(msg)
		m.resultAt = time.Now()
		m.messages = nil

	case transform.Failed:
		m.phase = phaseShowingError
		m.fraction = 0
		m.status = fmt.Sprintf("Error: %v", msg.Err)
		m.messages = nil
	}
	return m
}

// dismissResult returns to idle but keeps the summary so it can be
// printed after the program exits.
func (m Model) dismissResult() Model {
	m.phase = phaseIdle
	m.fraction = 0
	m.status = idleStatus
	return m
}

// LastResult returns the most recent job summary, empty if none finished.
func (m Model) LastResult() string {
	return m.lastResult
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Header
	header := HeaderStyle.Render(fmt.Sprintf("Squish %s", m.Version))

	sections := []string{
		header,
		InfoStyle.Render("Compress and decompress files with zstd"),
		m.levelView(),
		m.statusView(),
	}

	// Active component
	switch m.phase {
	case phasePicking:
		sections = append(sections, m.picker.View())
	case phaseNaming:
		sections = append(sections, m.output.View())
	}

	// Progress gauge
	if m.phase == phaseRunning || m.fraction > 0 {
		pct := m.fraction
		if pct < 0 {
			pct = 0
		}
		if pct > 1 {
			pct = 1
		}
		sections = append(sections, m.gauge.ViewAs(pct))
	}

	// Finished job summary
	if m.phase == phaseShowingResult && m.lastResult != "" {
		sections = append(sections, SuccessStyle.Render(m.lastResult))
	}

	sections = append(sections, m.controlsView())

	return strings.Join(sections, "\n\n")
}

// levelView renders the level selector with the current choice highlighted.
func (m Model) levelView() string {
	parts := make([]string, 0, 3)
	for _, level := range []codec.Level{codec.Fast, codec.Normal, codec.Best} {
		label := level.Label()
		if level == m.level {
			parts = append(parts, SelectedStyle.Render(fmt.Sprintf("[%s]", label)))
		} else {
			parts = append(parts, SubtleStyle.Render(fmt.Sprintf(" %s ", label)))
		}
	}
	return fmt.Sprintf("Level: %s %s", strings.Join(parts, " "), SubtleStyle.Render("↑/↓ to change"))
}

func (m Model) statusView() string {
	switch m.phase {
	case phaseShowingError:
		return ErrorStyle.Render(m.status)
	case phaseRunning:
		return ProcessingStyle.Render(m.status)
	default:
		return InfoStyle.Render(m.status)
	}
}

func (m Model) controlsView() string {
	var controls string
	switch m.phase {
	case phasePicking:
		controls = "Controls: [enter] Select  [esc] Cancel  [q] Quit"
	case phaseNaming:
		controls = "Controls: [enter] Start  [esc] Cancel"
	case phaseRunning:
		controls = "Controls: [q] Quit"
	default:
		controls = "Controls: [o] Compress  [d] Decompress  [↑/↓] Level  [q] Quit"
	}
	return SubtleStyle.Render(controls)
}

func compressedSummary(msg transform.Compressed) string {
	ratio := 0.0
	if msg.OriginalSize > 0 {
		ratio = float64(msg.CompressedSize) / float64(msg.OriginalSize) * 100
	}
	return fmt.Sprintf("✅ Compression successful!\n📂 Saved to: %s\n📊 Original: %s\n📉 Compressed: %s (%.2f%% of original)",
		msg.OutputPath,
		humanize.Bytes(uint64(msg.OriginalSize)),
		humanize.Bytes(uint64(msg.CompressedSize)),
		ratio)
}

func decompressedSummary(msg transform.Decompressed) string {
	return fmt.Sprintf("✅ Decompression successful!\n📂 Saved to: %s\n📦 Compressed: %s\n📊 Decompressed: %s",
		msg.OutputPath,
		humanize.Bytes(uint64(msg.CompressedSize)),
		humanize.Bytes(uint64(msg.DecompressedSize)))
}

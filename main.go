package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	output := flag.String("o", "", "render one layout to this PNG and exit")
	legend := flag.String("legend", "", "with -o, also write the tile legend to this PNG")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	if os.Getenv("MOSAIC_DEBUG") != "" {
		f, err := tea.LogToFile("mosaic-debug.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	config := loadConfig()

	if *output != "" {
		if err := renderHeadless(config, *seed, *output, *legend); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(
		initialModel(config, rand.New(rand.NewSource(*seed))),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// renderHeadless generates one layout from the configuration and writes it.
func renderHeadless(config *Config, seed int64, output, legend string) error {
	conv := config.Converter()
	store := NewStore(conv)
	rng := rand.New(rand.NewSource(seed))
	if err := store.NewLayout(config.Layout(), config.Palette, config.Symmetry, rng); err != nil {
		return fmt.Errorf("generate layout: %w", err)
	}
	if !store.HasContent() {
		return fmt.Errorf("room %gx%g cm holds no whole %g cm tiles", config.RoomWidth, config.RoomHeight, config.TileSize)
	}

	grout := GroutMetrics{Width: config.GroutWidth, Color: config.GroutColor}
	img := NewCompositor(conv).Render(store.State(), grout, config.ShowGrid)
	if err := SavePNG(output, img); err != nil {
		return fmt.Errorf("export %s: %w", output, err)
	}
	log.Printf("exported %s (%dx%d px)", output, img.Bounds().Dx(), img.Bounds().Dy())

	if legend != "" {
		legendImg, err := RenderLegend(store.State())
		if err != nil {
			return fmt.Errorf("legend: %w", err)
		}
		if err := SavePNG(legend, legendImg); err != nil {
			return fmt.Errorf("export %s: %w", legend, err)
		}
	}
	return nil
}

func initialModel(config *Config, rng *rand.Rand) model {
	conv := config.Converter()
	store := NewStore(conv)
	painter := NewPainter(store.Grid)
	painter.SetSymmetry(config.Symmetry)

	return model{
		config:     config,
		store:      store,
		compositor: NewCompositor(conv),
		painter:    painter,
		designer:   NewPatternDesigner(),
		rng:        rng,
		layout:     config.Layout(),
		tileCount:  len(config.Palette),
		palette:    config.Palette.Clone(),
		grout:      GroutMetrics{Width: config.GroutWidth, Color: config.GroutColor},
		showGrid:   config.ShowGrid,
		symmetry:   config.Symmetry,
		mode:       ModeNormal,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.redraw()
		return m, nil

	case resizeMsg:
		if msg.seq == m.resizeSeq {
			m.applyResize()
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		switch m.mode {
		case ModeInput:
			return m.handleInputKey(msg)
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModePattern:
			return m.handlePatternKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""

	if m.editMode {
		switch key {
		case "h", "left", "l", "right", "k", "up", "j", "down", "H", "L", "K", "J",
			"shift+left", "shift+right", "shift+up", "shift+down":
			m.handleCursorMove(key, m.getMoveSpeed(key))
			return m, nil
		case " ":
			m.paintAtCursor()
			return m, nil
		}
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.help = true
	case "tab":
		m.field = (m.field + 1) % numFields
	case "shift+tab":
		m.field = (m.field + numFields - 1) % numFields
	case "j", "down":
		m.field = min(m.field+1, numFields-1)
	case "k", "up":
		m.field = max(m.field-1, 0)
	case "h", "left":
		return m, m.adjustField(m.field, -1)
	case "l", "right":
		return m, m.adjustField(m.field, 1)
	case "enter":
		m.startFieldInput(m.field)
	case "n":
		m.newLayout()
	case "p":
		m.designer.Open(m.palette)
		m.mode = ModePattern
	case "e":
		m.editMode = !m.editMode
	case "u":
		m.undo()
	case "g":
		return m, m.adjustField(FieldShowGrid, 1)
	case "s":
		return m, m.adjustField(FieldSymmetry, 1)
	case "c":
		m.startFieldInput(FieldSwatch)
	case "y":
		m.copySwatch()
	case "v":
		m.pasteSwatch()
	case "S":
		m.startExport(FileOpSavePNG, defaultExportName)
	case "L":
		m.startExport(FileOpSaveLegend, defaultLegendName)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.selectColor(int(key[0] - '1'))
	}
	return m, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/term"

	"github.com/NOT-REAL-GAMES/vkdump"
	"github.com/NOT-REAL-GAMES/vkdump/capture"
	"github.com/NOT-REAL-GAMES/vkdump/config"
)

var version = "dev" // set via -ldflags at build time

func main() {
	configFlag := flag.String("config", "", "Settings file (.toml, .yaml or .yml)")
	dbFlag := flag.String("db", "", "Capture database (overrides capture.database)")
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	flag.BoolVar(debugFlag, "d", false, "Enable debug output (short)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Usage = showUsage
	flag.Parse()

	if *versionFlag {
		fmt.Println("vkdump", version)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		showUsage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			errorPrintf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *dbFlag != "" {
		cfg.Capture.Database = *dbFlag
	}

	log := capture.NewLogger(*debugFlag || cfg.Capture.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, args[0], args[1:]); err != nil {
		errorPrintf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *capture.Logger, cmd string, args []string) error {
	store, err := capture.OpenStore(cfg.Capture.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Debug("opened %s", cfg.Capture.Database)

	switch cmd {
	case "list":
		return listEntries(ctx, store)
	case "show":
		return showEntry(ctx, store, args)
	case "stats":
		return showStats(ctx, store)
	case "sample":
		return recordSample(ctx, cfg, store, log)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func listEntries(ctx context.Context, store *capture.Store) error {
	entries, err := store.Entries(ctx)
	if err != nil {
		return err
	}
	width := terminalWidth()
	for _, e := range entries {
		line := fmt.Sprintf("%6d  %s  %.12s  %s",
			e.Seq, e.RecordedAt.Format(time.DateTime), e.Digest, e.Name)
		if len(line) > width {
			line = line[:width]
		}
		fmt.Println(line)
	}
	return nil
}

func showEntry(ctx context.Context, store *capture.Store, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fields := fs.Bool("fields", false, "List the call's argument names instead of the dump")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("show needs exactly one sequence number")
	}
	seq, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("bad sequence number %q", fs.Arg(0))
	}
	e, err := store.Entry(ctx, seq)
	if err != nil {
		return err
	}
	if !*fields {
		_, err = os.Stdout.Write(e.Body)
		return err
	}

	var doc struct {
		Function string         `json:"function"`
		Args     map[string]any `json:"args"`
		Result   string         `json:"result"`
	}
	if err := sonnet.Unmarshal(e.Body, &doc); err != nil {
		return fmt.Errorf("entry %d: %w", seq, err)
	}
	names := make([]string, 0, len(doc.Args))
	for name := range doc.Args {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("%s(%s)", doc.Function, strings.Join(names, ", "))
	if doc.Result != "" {
		fmt.Printf(" -> %s", doc.Result)
	}
	fmt.Println()
	return nil
}

func showStats(ctx context.Context, store *capture.Store) error {
	st, err := store.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("calls:  %d\n", st.Calls)
	fmt.Printf("dumps:  %d (%d bytes)\n", st.Dumps, st.BodyBytes)
	names := make([]string, 0, len(st.ByName))
	for name := range st.ByName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-40s %d\n", name, st.ByName[name])
	}
	return nil
}

func recordSample(ctx context.Context, cfg config.Config, store *capture.Store, log *capture.Logger) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	rec := capture.NewRecorder(store, log, cfg.Capture.Workers, opts...)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		rec.Tee(capture.NewStreamSink(os.Stdout))
	}
	seqs, err := rec.RecordBatch(ctx, sampleCalls())
	if err != nil {
		return err
	}
	log.Debug("sample stored as %v", seqs)
	fmt.Fprintf(os.Stderr, "recorded %d calls\n", len(seqs))
	return nil
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func stderrSupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// errorPrintf prints an error message to stderr, in red on a terminal.
func errorPrintf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if stderrSupportsColor() {
		msg = "\x1b[91m" + msg + "\x1b[0m"
	}
	fmt.Fprint(os.Stderr, msg)
}

func showUsage() {
	usage := `Usage: vkdump [options] <command> [args]

Inspect Vulkan calls captured as JSON dumps.

Commands:
  list                List stored calls
  show [-fields] SEQ  Print the dump of call SEQ
  stats               Summarize the capture database
  sample              Record a small set of example calls

Options:
  -config FILE        Load settings from FILE (.toml, .yaml or .yml)
  -db FILE            Capture database (default: vkdump.db)
  -d, -debug          Enable debug output
  -version            Print version and exit
`
	fmt.Fprint(os.Stderr, usage)
}

// sampleCalls is a short frame-setup sequence covering instance, buffer and
// image creation.
func sampleCalls() []*vkdump.Call {
	app := &vkdump.ApplicationInfo{
		ApplicationName:    "vkdump sample",
		ApplicationVersion: 1,
		EngineName:         "none",
		ApiVersion:         vkdump.MakeApiVersion(0, 1, 3, 0),
	}
	instance := &vkdump.InstanceCreateInfo{
		ApplicationInfo:       app,
		EnabledExtensionCount: 1,
		EnabledExtensionNames: []string{"VK_EXT_debug_utils"},
	}
	buffer := &vkdump.BufferCreateInfo{
		Size:        65536,
		Usage:       vkdump.BUFFER_USAGE_VERTEX_BUFFER_BIT | vkdump.BUFFER_USAGE_TRANSFER_DST_BIT,
		SharingMode: vkdump.SHARING_MODE_EXCLUSIVE,
	}
	image := &vkdump.ImageCreateInfo{
		ImageType:     vkdump.IMAGE_TYPE_2D,
		Format:        vkdump.FORMAT_R8G8B8A8_UNORM,
		Extent:        vkdump.Extent3D{Width: 256, Height: 256, Depth: 1},
		MipLevels:     1,
		ArrayLayers:   1,
		Samples:       vkdump.SAMPLE_COUNT_1_BIT,
		Tiling:        vkdump.IMAGE_TILING_OPTIMAL,
		Usage:         vkdump.IMAGE_USAGE_SAMPLED_BIT | vkdump.IMAGE_USAGE_TRANSFER_DST_BIT,
		SharingMode:   vkdump.SHARING_MODE_EXCLUSIVE,
		InitialLayout: vkdump.IMAGE_LAYOUT_UNDEFINED,
	}
	device := vkdump.Device(0x1)
	return []*vkdump.Call{
		vkdump.NewCall("vkCreateInstance",
			vkdump.Arg{Name: "pCreateInfo", Value: instance},
			vkdump.Arg{Name: "pAllocator", Value: nil},
		).Returning(vkdump.SUCCESS),
		vkdump.NewCall("vkCreateBuffer",
			vkdump.Arg{Name: "device", Value: device},
			vkdump.Arg{Name: "pCreateInfo", Value: buffer},
			vkdump.Arg{Name: "pAllocator", Value: nil},
		).Returning(vkdump.SUCCESS),
		vkdump.NewCall("vkCreateImage",
			vkdump.Arg{Name: "device", Value: device},
			vkdump.Arg{Name: "pCreateInfo", Value: image},
			vkdump.Arg{Name: "pAllocator", Value: nil},
		).Returning(vkdump.SUCCESS),
	}
}

// Command arenademo copies a few values into a linear arena and reads them
// back through their descriptors.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	arena "github.com/pavanmanishd/linear-arena"
)

var (
	EnvPrefix = "ARENADEMO_"
	Capacity  = pflag.IntP("capacity", "c", 1337, "pool size in bytes")
	Alignment = pflag.IntP("alignment", "a", arena.DefaultAlignment, "allocation alignment (power of two, 0 for the cache line size)")
	Text      = pflag.StringP("text", "t", "Hello", "string to copy into the pool")
	Number    = pflag.Uint32P("number", "n", 42, "integer to copy into the pool")
	Workers   = pflag.IntP("workers", "w", 0, "also split the pool into this many shards and fill them concurrently")
	JSON      = pflag.Bool("json", false, "print descriptors as json")
	LogLevel  = levelP("log-level", "L", slog.LevelInfo, "log level")
	LogJSON   = pflag.Bool("log-json", false, "use json logs")
	Help      = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	parseEnv(EnvPrefix)
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	if *LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: LogLevel,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: LogLevel,
		})))
	}

	if err := run(); err != nil {
		slog.Error("failed to run demo", "error", err)
		os.Exit(1)
	}
}

type report struct {
	Text      arena.Descriptor   `json:"text"`
	Number    arena.Descriptor   `json:"number"`
	Value     uint32             `json:"value"`
	Metrics   arena.ArenaMetrics `json:"metrics"`
	ShardUsed []int              `json:"shard_used,omitempty"`
}

func run() error {
	if *Capacity < 0 {
		return fmt.Errorf("invalid capacity %d", *Capacity)
	}
	align := *Alignment
	if align == 0 {
		align = arena.CacheLineSize()
	}
	if align < 0 || align&(align-1) != 0 {
		return fmt.Errorf("invalid alignment %d: %w", align, arena.ErrInvalidAlignment)
	}

	pool := arena.AlignedBuffer(*Capacity, align)
	a := arena.NewArena(pool, align)
	slog.Debug("created arena", "capacity", a.Capacity(), "alignment", a.Alignment())

	text, err := a.Append([]byte(*Text))
	if err != nil {
		return fmt.Errorf("copy text: %w", err)
	}
	slog.Info("copied text", "descriptor", text.String())

	num, err := arena.AppendValue(a, *Number)
	if err != nil {
		return fmt.Errorf("copy number: %w", err)
	}
	slog.Info("copied number", "descriptor", num.String())

	r := report{
		Text:    text,
		Number:  num,
		Value:   arena.LoadValue[uint32](a, num),
		Metrics: a.Metrics(),
	}

	if *Workers > 0 {
		a.Reset()
		used, err := fill(pool, *Workers, align)
		if err != nil {
			return err
		}
		r.ShardUsed = used
	}

	if *JSON {
		buf, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(buf))
		return nil
	}
	fmt.Printf("%q at %v\n", *Text, r.Text)
	fmt.Printf("%d at %v\n", r.Value, r.Number)
	fmt.Printf("%d of %d bytes in use\n", r.Metrics.SizeInUse, r.Metrics.Capacity)
	for i, n := range r.ShardUsed {
		fmt.Printf("shard %d: %d bytes\n", i, n)
	}
	return nil
}

// fill appends uint32 values to every shard of pool until each runs out of
// space and returns the bytes used per shard.
func fill(pool []byte, workers, align int) ([]int, error) {
	shards := arena.Shard(pool, workers, align)
	used := make([]int, len(shards))

	var g errgroup.Group
	for i, s := range shards {
		g.Go(func() error {
			for v := uint32(0); ; v++ {
				if _, err := arena.AppendHandle(s, v); err != nil {
					if !errors.Is(err, arena.ErrOutOfSpace) {
						return fmt.Errorf("shard %d: %w", i, err)
					}
					break
				}
			}
			used[i] = s.Offset()
			slog.Debug("filled shard", "shard", i, "used", used[i], "capacity", s.Capacity())
			return nil
		})
	}
	return used, g.Wait()
}

func levelP(name, shorthand string, value slog.Level, usage string) *slog.LevelVar {
	level := new(slog.LevelVar)
	def := new(slog.LevelVar)
	def.Set(value)
	pflag.TextVarP(level, name, shorthand, def, usage)
	return level
}

// parseEnv sets flags from PREFIX_FLAG_NAME environment variables.
func parseEnv(prefix string) {
	for _, env := range os.Environ() {
		if k, v, ok := strings.Cut(env, "="); ok {
			if s, ok := strings.CutPrefix(k, prefix); ok {
				n := strings.Map(func(r rune) rune {
					switch r {
					case '_':
						return '-'
					}
					return unicode.ToLower(r)
				}, s)
				f := pflag.CommandLine.Lookup(n)
				if f == nil {
					fmt.Fprintf(os.Stderr, "env %s: unknown flag --%s\n", k, n)
					continue
				}
				if err := f.Value.Set(v); err != nil {
					fmt.Fprintf(os.Stderr, "env %s: flag --%s: invalid argument: %v\n", k, n, err)
					os.Exit(2)
				}
			}
		}
	}
}

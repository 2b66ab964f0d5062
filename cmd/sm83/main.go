package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/pkg/log"
)

// FrameTime is the wall clock duration of a single frame.
const FrameTime = time.Second * cpu.CyclesPerFrame / cpu.ClockSpeed

func main() {
	rootCmd := &cobra.Command{
		Use:           "sm83",
		Short:         "Run the SM83 instruction core against a flat 64 KiB memory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// run command
	var (
		frames   uint64
		realtime bool
		trace    bool
		skipBoot bool
		logLevel string
		pprof    string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute instructions from address 0x0000 (or 0x0100 with --skip-boot)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				logLevel = "debug"
			}
			logger, err := log.NewWithLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}

			if pprof != "" {
				// start pprof
				go func() {
					if err := http.ListenAndServe(pprof, nil); err != nil {
						logger.Errorf("pprof: %v", err)
					}
				}()
			}

			opts := []cpu.Opt{cpu.WithLogger(logger)}
			if trace {
				opts = append(opts, cpu.Debug())
			}
			if skipBoot {
				opts = append(opts, cpu.SkipBoot())
			}

			mem := ram.New()
			c := cpu.NewCPU(mem, opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			start := time.Now()
			err = run(ctx, c, frames, realtime)
			logger.Infof("ran %d frames in %s", c.Frames(), time.Since(start).Round(time.Millisecond))
			logger.Infof("registers: %s", c.Registers.String())
			logger.Infof("memory: %016x", mem.Sum64())
			return err
		},
	}
	runCmd.Flags().Uint64Var(&frames, "frames", 60, "Number of frames to run (0 = until interrupted)")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "Pace execution to the hardware frame rate")
	runCmd.Flags().BoolVar(&trace, "trace", false, "Log every executed instruction")
	runCmd.Flags().BoolVar(&skipBoot, "skip-boot", false, "Start with the post boot ROM register state")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, error)")
	runCmd.Flags().StringVar(&pprof, "pprof", "", "Serve pprof on the given address, e.g. localhost:6060")

	// opcodes command
	var all bool

	opcodesCmd := &cobra.Command{
		Use:   "opcodes",
		Short: "List the instruction table",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			defined := 0
			for opcode, instruction := range cpu.Instructions() {
				if !instruction.Defined() {
					if all {
						fmt.Fprintf(out, "0x%02X  %-16s\n", opcode, "-")
					}
					continue
				}
				defined++
				fmt.Fprintf(out, "0x%02X  %-16s %2d\n", opcode, instruction.Name(), instruction.Cycles())
			}
			fmt.Fprintf(out, "\n%d of 256 opcodes defined\n", defined)
			return nil
		},
	}
	opcodesCmd.Flags().BoolVarP(&all, "all", "a", false, "Include undefined opcodes")

	rootCmd.AddCommand(runCmd, opcodesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes frames until the requested number has elapsed, the context
// is cancelled or the CPU reaches an opcode it cannot execute.
func run(ctx context.Context, c *cpu.CPU, frames uint64, realtime bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			opErr, ok := r.(*cpu.UnimplementedOpcodeError)
			if !ok {
				panic(r)
			}
			err = opErr
		}
	}()

	var ticker *time.Ticker
	if realtime {
		ticker = time.NewTicker(FrameTime)
		defer ticker.Stop()
	}

	for frames == 0 || c.Frames() < frames {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		c.RunFrame()
	}
	return nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/pswsm/fasta-cli-tools/internal/fasta"
	"github.com/pswsm/fasta-cli-tools/internal/generate"
	"github.com/pswsm/fasta-cli-tools/internal/sequence"
	"github.com/pswsm/fasta-cli-tools/internal/stats"
	"github.com/pswsm/fasta-cli-tools/internal/strand"
	"github.com/pswsm/fasta-cli-tools/internal/translator"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// optionalArg returns args[i] or "" when it was not given.
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, s)
	}
	return n, nil
}

func (a *app) read(path string) (sequence.Sequence, error) {
	seq, err := fasta.ReadSequence(path)
	if err != nil {
		return sequence.Sequence{}, err
	}
	a.logger.Debug("parsed fasta", "path", path, "header", seq.Header(), "bases", seq.Len(), "alphabet", seq.Alphabet())
	return seq, nil
}

func (a *app) present(seq sequence.Sequence, upper bool) sequence.Sequence {
	if upper || a.cfg.Uppercase {
		return seq.ToUppercase()
	}
	return seq
}

func newPrintCmd(a *app) *cobra.Command {
	var upper bool
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Reads file, prints its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := a.read(args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd, "", fasta.SerializeSequenceWidth(a.present(seq, upper), a.cfg.LineWidth))
		},
	}
	cmd.Flags().BoolVarP(&upper, "upper", "u", false, "print bases in uppercase")
	return cmd
}

func newCutCmd(a *app) *cobra.Command {
	var oneBased bool
	cmd := &cobra.Command{
		Use:   "cut FROM TO INPUT [OUTPUT]",
		Short: "Cuts nucleotides from..to range",
		Long: "Cuts the half-open range [FROM, TO) of the sequence, counting from 0.\n" +
			"With --one-based, FROM and TO are an inclusive range counting from 1.",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("FROM", args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex("TO", args[1])
			if err != nil {
				return err
			}
			if oneBased {
				if from == 0 {
					return fmt.Errorf("FROM must be at least 1 with --one-based")
				}
				from--
			}
			seq, err := a.read(args[2])
			if err != nil {
				return err
			}
			cut, err := seq.Cut(from, to)
			if err != nil {
				return err
			}
			a.logger.Info("cut sequence", "from", from, "to", to, "bases", cut.Len())
			return a.emit(cmd, optionalArg(args, 3), fasta.SerializeSequenceWidth(a.present(cut, false), a.cfg.LineWidth))
		},
	}
	cmd.Flags().BoolVar(&oneBased, "one-based", false, "read FROM and TO as a 1-based inclusive range")
	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		isRNA    bool
		workers  int
		seed     uint64
		progress bool
	)
	cmd := &cobra.Command{
		Use:   "generate LENGTH [OUTPUT]",
		Short: "Generates a fasta file of n bases",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[0])
			if err != nil || length < 1 {
				return fmt.Errorf("LENGTH must be a positive integer, got %q", args[0])
			}
			opts := generate.Options{
				Length:   length,
				Alphabet: sequence.DNA,
				Workers:  a.cfg.Workers,
				Seed:     a.cfg.Seed,
			}
			if isRNA {
				opts.Alphabet = sequence.RNA
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			if progress {
				bar := pb.New(len(generate.Partition(length, generate.DefaultChunkSize)))
				bar.Output = cmd.ErrOrStderr()
				bar.Start()
				defer bar.Finish()
				opts.OnChunk = func() { bar.Increment() }
			}

			a.logger.Debug("generating", "length", length, "alphabet", opts.Alphabet, "workers", opts.Workers)
			seq, err := generate.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			out := optionalArg(args, 1)
			if err := a.emit(cmd, out, fasta.SerializeSequenceWidth(seq, a.cfg.LineWidth)); err != nil {
				return err
			}
			a.logger.Info("generated sequence", "bases", seq.Len(), "alphabet", seq.Alphabet(), "output", out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&isRNA, "rna", "r", false, "generate RNA instead of DNA")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel workers (overrides config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed; 0 picks one (overrides config)")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var (
		upper bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "format FILE [OUTPUT]",
		Short: "Formats a fasta file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := a.read(args[0])
			if err != nil {
				return err
			}
			w := a.cfg.LineWidth
			if cmd.Flags().Changed("width") {
				w = width
			}
			return a.emit(cmd, optionalArg(args, 1), fasta.SerializeSequenceWidth(a.present(seq, upper), w))
		},
	}
	cmd.Flags().BoolVarP(&upper, "upper", "u", false, "format to uppercase")
	cmd.Flags().IntVar(&width, "width", fasta.LineWidth, "bases per line; 0 writes one line")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyzes a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := a.read(args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd, "", renderComposition(stats.Analyze(seq)))
		},
	}
}

func renderComposition(c stats.Composition) string {
	var sb strings.Builder
	for _, f := range c.Fields() {
		sb.WriteString(keyStyle.Render(f.Key+":") + " " + valueStyle.Render(f.Value) + "\n")
	}
	return sb.String()
}

func newGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a derived strand or the aminoacid chain of a fasta file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	for _, op := range strand.Operations() {
		cmd.AddCommand(newStrandCmd(a, op))
	}
	cmd.AddCommand(newAminoacidsCmd(a))
	return cmd
}

var strandHelp = map[strand.Operation]string{
	strand.Reverse:           "Get the reverse strand",
	strand.Complement:        "Get the complementary strand",
	strand.ReverseComplement: "Get the reverse-complementary strand",
	strand.Transcribe:        "Transcribe DNA to RNA (t to u)",
	strand.BackTranscribe:    "Reverse transcribe RNA to DNA (u to t)",
}

func newStrandCmd(a *app, op strand.Operation) *cobra.Command {
	var then []string
	cmd := &cobra.Command{
		Use:     string(op) + " FILE [OUTPUT]",
		Aliases: strand.Aliases(op),
		Short:   strandHelp[op],
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := []strand.Operation{op}
			for _, name := range then {
				next, err := strand.Parse(name)
				if err != nil {
					return err
				}
				ops = append(ops, next)
			}
			seq, err := a.read(args[0])
			if err != nil {
				return err
			}
			out, err := strand.Chain(seq, ops...)
			if err != nil {
				return err
			}
			a.logger.Debug("applied strand operations", "ops", ops, "bases", out.Len())
			return a.emit(cmd, optionalArg(args, 1), fasta.SerializeSequenceWidth(a.present(out, false), a.cfg.LineWidth))
		},
	}
	cmd.Flags().StringSliceVar(&then, "then", nil, "further strand operations to apply, in order")
	return cmd
}

func newAminoacidsCmd(a *app) *cobra.Command {
	var lowercase, split, transcribe bool
	cmd := &cobra.Command{
		Use:     "aminoacids FILE [OUTPUT]",
		Aliases: []string{"amioacids", "translate"},
		Short:   "Transform a RNA sequence to an aminoacid one",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := a.read(args[0])
			if err != nil {
				return err
			}
			if transcribe {
				seq = seq.Transcribe()
			}
			protein, err := translator.Translate(seq)
			if err != nil {
				return err
			}
			header := "Aminoacids of " + seq.Header()
			var text string
			if split {
				segments := translator.SegmentOnStop(protein)
				var sb strings.Builder
				for i, s := range segments {
					sb.WriteString(fasta.SerializeProteinRecord(fmt.Sprintf("%s, protein %d", header, i+1), s, !lowercase, a.cfg.LineWidth))
				}
				text = sb.String()
				a.logger.Info("translated", "aminoacids", protein.Len(), "proteins", len(segments))
			} else {
				text = fasta.SerializeProteinRecord(header, protein, !lowercase, a.cfg.LineWidth)
				a.logger.Info("translated", "aminoacids", protein.Len())
			}
			return a.emit(cmd, optionalArg(args, 1), text)
		},
	}
	cmd.Flags().BoolVarP(&lowercase, "lowercase", "l", false, "protein in lowercase")
	cmd.Flags().BoolVarP(&split, "split", "s", false, "write one record per stop-terminated protein")
	cmd.Flags().BoolVarP(&transcribe, "transcribe", "t", false, "transcribe DNA input (t to u) before translating")
	return cmd
}

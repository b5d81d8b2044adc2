package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/cobra"

	bpost "github.com/bpost/shm-go"
	"github.com/bpost/shm-go/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// now is replaced by tests.
var now = time.Now

type clientFactory func(configPath string) (*bpost.Client, error)

func newRootCommand(out io.Writer, newClient clientFactory) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "bpost",
		Short:         "Manage bpost Shipping Manager orders and labels",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&configPath, "config", "bpost.yaml", "configuration file, YAML or TOML")

	client := func() (*bpost.Client, error) {
		return newClient(configPath)
	}

	root.AddCommand(
		newFetchOrderCommand(out, client),
		newModifyStatusCommand(out, client),
		newCreateLabelCommand(out, client),
		newLabelsCommand(out, client),
		newWaitCommand(out, client),
	)
	return root
}

func newFetchOrderCommand(out io.Writer, client func() (*bpost.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-order REFERENCE",
		Short: "Print an order as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			order, err := c.FetchOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(out, order)
		},
	}
}

func newModifyStatusCommand(out io.Writer, client func() (*bpost.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "modify-status REFERENCE STATUS",
		Short: "Set the status of an order",
		Long: "Set the status of an order. STATUS is one of " +
			strings.Join(statusNames(), ", ") + ", in any case.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := types.ParseOrderStatus(args[1])
			if err != nil {
				return err
			}
			c, err := client()
			if err != nil {
				return err
			}
			if err := c.ModifyOrderStatus(cmd.Context(), args[0], status); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s %s\n", args[0], status)
			return err
		},
	}
}

func newCreateLabelCommand(out io.Writer, client func() (*bpost.Client, error)) *cobra.Command {
	var (
		amount       int
		format       string
		withRetour   bool
		returnLabels bool
	)

	cmd := &cobra.Command{
		Use:   "create-label REFERENCE",
		Short: "Create national labels for an order and print the label entry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &bpost.CreateNationalLabelInput{
				Reference:   args[0],
				Amount:      amount,
				LabelFormat: types.LabelFormat(format),
			}
			if cmd.Flags().Changed("with-retour") {
				params.WithRetour = &withRetour
			}
			if cmd.Flags().Changed("return-labels") {
				params.ReturnLabels = &returnLabels
			}

			c, err := client()
			if err != nil {
				return err
			}
			entry, err := c.CreateNationalLabel(cmd.Context(), params)
			if err != nil {
				return err
			}
			return writeJSON(out, entry)
		},
	}
	cmd.Flags().IntVar(&amount, "amount", 1, "number of labels")
	cmd.Flags().StringVar(&format, "format", "", "label format, A_4 or A_5")
	cmd.Flags().BoolVar(&withRetour, "with-retour", false, "include return labels")
	cmd.Flags().BoolVar(&returnLabels, "return-labels", false, "include the label documents in the response")
	return cmd
}

func newLabelsCommand(out io.Writer, client func() (*bpost.Client, error)) *cobra.Command {
	var (
		format string
		order  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "labels [BARCODE...]",
		Short: "Download the PDF labels of boxes, or of every box of an order",
		Long: "Download the PDF labels of boxes, or of every box of an order with --order.\n" +
			"The --output pattern accepts strftime verbs, {barcode} and {reference}.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(order) == 0 && len(args) == 0 {
				return fmt.Errorf("expect barcodes or --order")
			}

			c, err := client()
			if err != nil {
				return err
			}

			documents := map[string][]byte{}
			placeholder := "{barcode}"
			if len(order) != 0 {
				b, err := c.RetrievePDFLabelsForOrder(cmd.Context(), order, types.LabelFormat(format))
				if err != nil {
					return err
				}
				documents[order] = b
				placeholder = "{reference}"
			} else {
				if documents, err = c.RetrievePDFLabelsForBoxes(cmd.Context(), args, types.LabelFormat(format)); err != nil {
					return err
				}
			}

			pattern, err := strftime.Format(output, now())
			if err != nil {
				return fmt.Errorf("invalid output pattern %q, %w", output, err)
			}

			keys := make([]string, 0, len(documents))
			for k := range documents {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				path := strings.ReplaceAll(pattern, placeholder, k)
				if err := writeFile(path, documents[k]); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "label format, A_4 or A_5")
	cmd.Flags().StringVar(&order, "order", "", "order reference to download the labels of")
	cmd.Flags().StringVar(&output, "output", "{barcode}.pdf", "output file pattern")
	return cmd
}

func newWaitCommand(out io.Writer, client func() (*bpost.Client, error)) *cobra.Command {
	var (
		maxWait  time.Duration
		minDelay time.Duration
		maxDelay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait REFERENCE STATUS",
		Short: "Wait until an order has the status and print it as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			order, err := c.WaitUntilOrderStatus(cmd.Context(), args[0], types.OrderStatus(args[1]), maxWait,
				func(o *bpost.WaitUntilOrderStatusOptions) {
					o.MinDelay = minDelay
					o.MaxDelay = maxDelay
					o.LogWaitAttempts = true
				})
			if err != nil {
				return err
			}
			return writeJSON(out, order)
		},
	}
	cmd.Flags().DurationVar(&maxWait, "max-wait", 5*time.Minute, "maximum time to wait")
	cmd.Flags().DurationVar(&minDelay, "min-delay", 2*time.Second, "minimum delay between attempts")
	cmd.Flags().DurationVar(&maxDelay, "max-delay", 30*time.Second, "maximum delay between attempts")
	return cmd
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFile(path string, b []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}

func statusNames() []string {
	var names []string
	for _, s := range types.OrderStatus("").Values() {
		names = append(names, string(s))
	}
	return names
}

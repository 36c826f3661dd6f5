package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucidnz/shopify-resource/internal/constants"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// errMaxReached stops iteration once the caller's display cap is hit.
var errMaxReached = errors.New("max records reached")

// resourceSpec describes one Admin API collection for the command builder.
// Every resource gets the same list/get/count/delete surface.
type resourceSpec struct {
	use      string
	aliases  []string
	singular string
	short    string
	columns  []string
	selector func(shopify.Client) shopify.Repository
}

func newResourceCommandGroup(spec resourceSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
		Long:    fmt.Sprintf("List, inspect, count, and delete %s", spec.use),
	}

	cmd.AddCommand(newResourceListCommand(spec))
	cmd.AddCommand(newResourceGetCommand(spec))
	cmd.AddCommand(newResourceCountCommand(spec))
	cmd.AddCommand(newResourceDeleteCommand(spec))

	return cmd
}

func newResourceListCommand(spec resourceSpec) *cobra.Command {
	var (
		fields  []string
		filters []string
		sinceID int64
		limit   int
		max     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.use,
		Long:  fmt.Sprintf("List %s, following since_id pagination page by page", spec.use),
		RunE: func(_ *cobra.Command, _ []string) error {
			params, err := ParseFilters(filters)
			if err != nil {
				return err
			}

			params = shopify.MergeParams(params, shopify.Params{"limit": limit})

			if len(fields) > 0 {
				params["fields"] = fields
			}

			if sinceID > 0 {
				params["since_id"] = sinceID
			}

			return runResourceListCommand(spec, params, max)
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "restrict returned fields (id is required for pagination)")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "request filter as key=value (repeatable)")
	cmd.Flags().Int64Var(&sinceID, "since-id", 0, "start listing after this id")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageLimit, "page size")
	cmd.Flags().IntVar(&max, "max", 0, "stop after this many records (0 = all)")

	return cmd
}

func runResourceListCommand(spec resourceSpec, params shopify.Params, max int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	creds, err := ActiveCredentials()
	if err != nil {
		return err
	}

	repo := spec.selector(client)

	var records []shopify.Record

	err = repo.Each(context.Background(), creds, params, func(record shopify.Record) error {
		records = append(records, record)

		if max > 0 && len(records) >= max {
			return errMaxReached
		}

		return nil
	})
	if err != nil && !errors.Is(err, errMaxReached) {
		return fmt.Errorf("failed to list %s: %w", spec.use, err)
	}

	return outputRecords(records, spec.columns)
}

func newResourceGetCommand(spec resourceSpec) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show a single " + spec.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			creds, err := ActiveCredentials()
			if err != nil {
				return err
			}

			var params shopify.Params
			if len(fields) > 0 {
				params = shopify.Params{"fields": fields}
			}

			record, err := spec.selector(client).Find(context.Background(), creds, id, params)
			if err != nil {
				return fmt.Errorf("failed to get %s %d: %w", spec.singular, id, err)
			}

			return outputRecord(record)
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "restrict returned fields")

	return cmd
}

func newResourceCountCommand(spec resourceSpec) *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count " + spec.use,
		RunE: func(_ *cobra.Command, _ []string) error {
			params, err := ParseFilters(filters)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			creds, err := ActiveCredentials()
			if err != nil {
				return err
			}

			count, err := spec.selector(client).Count(context.Background(), creds, params)
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", spec.use, err)
			}

			fmt.Println(count)

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "request filter as key=value (repeatable)")

	return cmd
}

func newResourceDeleteCommand(spec resourceSpec) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a " + spec.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force && !confirmDeletion(spec.singular, id) {
				return ErrDeletionDeclined
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			creds, err := ActiveCredentials()
			if err != nil {
				return err
			}

			err = spec.selector(client).Delete(context.Background(), creds, id)
			if err != nil {
				return fmt.Errorf("failed to delete %s %d: %w", spec.singular, id, err)
			}

			fmt.Printf("Deleted %s %d\n", spec.singular, id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}

	return id, nil
}

func confirmDeletion(singular string, id int64) bool {
	fmt.Printf("Really delete %s %d? (y/N): ", singular, id)

	reader := bufio.NewReader(os.Stdin)

	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}

func outputRecords(records []shopify.Record, columns []string) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(records)
	case OutputFormatYAML:
		return StandardYAMLRenderer(records)
	default:
		return renderRecordsTable(records, columns)
	}
}

func outputRecord(record shopify.Record) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(record)
	case OutputFormatYAML:
		return StandardYAMLRenderer(record)
	default:
		return renderRecordTable(record)
	}
}

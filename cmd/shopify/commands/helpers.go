package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lucidnz/shopify-resource/internal/constants"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
	"github.com/lucidnz/shopify-resource/pkg/shopifyclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const configDirName = ".shopify-resource"

// Common static errors used throughout the commands package.
var (
	ErrShopRequired     = errors.New("shop domain is required (use --shop, SHOPIFY_SHOP, or 'shopify login')")
	ErrTokenRequired    = errors.New("access token is required (use --token, SHOPIFY_TOKEN, or 'shopify login')")
	ErrInvalidFilter    = errors.New("invalid filter, expected key=value")
	ErrDeletionDeclined = errors.New("deletion declined")
)

// CreateClient builds an API client from the active configuration.
func CreateClient() (shopify.Client, error) {
	config := &shopify.Config{
		APIVersion: viper.GetString("api-version"),
		RetryMax:   constants.DefaultRetryMax,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewStderrLogger()
	}

	if viper.GetBool("cache") {
		config.Cache = shopify.DefaultCacheConfig()
	}

	client, err := shopifyclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// ActiveCredentials resolves the shop credentials from flags, environment,
// and the config file.
func ActiveCredentials() (*shopify.Credentials, error) {
	shop := viper.GetString("shop")
	if shop == "" {
		return nil, ErrShopRequired
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	return &shopify.Credentials{ShopDomain: shop, AccessToken: token}, nil
}

// ParseFilters converts repeated key=value flags into request parameters.
func ParseFilters(filters []string) (shopify.Params, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	params := make(shopify.Params, len(filters))

	for _, filter := range filters {
		key, value, found := strings.Cut(filter, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
		}

		params[key] = value
	}

	return params, nil
}

// StandardJSONRenderer writes v to stdout as indented JSON.
func StandardJSONRenderer(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes v to stdout as YAML.
func StandardYAMLRenderer(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return encoder.Close()
}

// renderRecordsTable writes records to stdout as a table with one row per
// record and one column per key in columns. Missing keys render empty.
func renderRecordsTable(records []shopify.Record, columns []string) error {
	table := tablewriter.NewWriter(os.Stdout)

	header := make([]any, 0, len(columns))
	for _, column := range columns {
		header = append(header, strings.ToUpper(column))
	}

	table.Header(header...)

	for _, record := range records {
		row := make([]any, 0, len(columns))
		for _, column := range columns {
			row = append(row, formatCell(record[column]))
		}

		_ = table.Append(row...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderRecordTable writes a single record as a two-column property table.
func renderRecordTable(record shopify.Record) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		_ = table.Append(key, formatCell(record[key]))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, configDirName, "config.yml"), nil
}

// StderrLogger logs structured messages to stderr for verbose mode.
type StderrLogger struct{}

// NewStderrLogger creates a logger writing to stderr.
func NewStderrLogger() *StderrLogger {
	return &StderrLogger{}
}

// Debug implements shopify.Logger.
func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

// Info implements shopify.Logger.
func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// Warn implements shopify.Logger.
func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// Error implements shopify.Logger.
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

func (l *StderrLogger) log(level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)

		return
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, fields[key]))
	}

	fmt.Fprintf(os.Stderr, "[%s] %s %s\n", level, msg, strings.Join(parts, " "))
}

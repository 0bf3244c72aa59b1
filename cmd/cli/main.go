package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "txledger-cli",
		Short: "txledger CLI tool",
		Long:  `A command line interface for submitting and inspecting ledger transactions.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the txledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var (
		amount        string
		txnType       string
		accountID     int64
		counterparty  string
		reference     string
		correlationID string
		idempotent    bool
	)

	submitCmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			if idempotent && correlationID == "" {
				correlationID = uuid.NewString()
			}

			payload := buildSubmitPayload(amount, txnType, accountID, cmd.Flags().Changed("account"), counterparty, reference, correlationID)
			postJSON("/transactions", payload)
		},
	}
	submitCmd.Flags().StringVar(&amount, "amount", "", "Transaction amount (required)")
	submitCmd.Flags().StringVar(&txnType, "type", "", "Transaction type: deposit, withdrawal, transfer (required)")
	submitCmd.Flags().Int64Var(&accountID, "account", 0, "Account id")
	submitCmd.Flags().StringVar(&counterparty, "counterparty", "", "Counterparty id")
	submitCmd.Flags().StringVar(&reference, "reference", "", "Globally unique reference")
	submitCmd.Flags().StringVar(&correlationID, "correlation-id", "", "Idempotency correlation key")
	submitCmd.Flags().BoolVar(&idempotent, "idempotent", false, "Generate a correlation key when none is given")
	submitCmd.MarkFlagRequired("amount")
	submitCmd.MarkFlagRequired("type")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/transactions")
		},
	}

	getCmd := &cobra.Command{
		Use:   "get [txn_id]",
		Short: "Fetch one transaction by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/transactions/" + args[0])
		},
	}

	rootCmd.AddCommand(submitCmd, listCmd, getCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func buildSubmitPayload(amount, txnType string, accountID int64, accountSet bool, counterparty, reference, correlationID string) map[string]any {
	payload := map[string]any{
		"amount":   json.RawMessage(amount),
		"txn_type": txnType,
	}

	if accountSet {
		payload["account_id"] = accountID
	}
	if counterparty != "" {
		payload["counterparty_id"] = counterparty
	}
	if reference != "" {
		payload["reference"] = reference
	}
	if correlationID != "" {
		payload["correlation_id"] = correlationID
	}

	return payload
}

func postJSON(path string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}

	fmt.Printf("HTTP %d\n%s\n", resp.StatusCode, pretty.String())
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"mini-foerderportal/internal/client"
	"mini-foerderportal/internal/core/eligibility"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

// Connection flags, shared by every API command
const (
	urlFlag   = "url"
	tokenFlag = "token"
	delayFlag = "delay"
	errorFlag = "sim-error"
)

// newConnectionFlags returns a fresh flag set, one per command
func newConnectionFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		urlFlag: &cobraflags.StringFlag{
			Name:  urlFlag,
			Value: "http://localhost:3000",
			Usage: "Base URL of the portal API",
		},
		tokenFlag: &cobraflags.StringFlag{
			Name:  tokenFlag,
			Value: "",
			Usage: "Session token sent as bearer",
		},
		delayFlag: &cobraflags.StringFlag{
			Name:  delayFlag,
			Value: "",
			Usage: "Simulated latency in milliseconds (x-sim-delay)",
		},
		errorFlag: &cobraflags.StringFlag{
			Name:  errorFlag,
			Value: "",
			Usage: "Simulated error status code (x-sim-error)",
		},
	}
}

// Command specific flags
const (
	usernameFlag   = "username"
	passwordFlag   = "password"
	nameFlag       = "name"
	emailFlag      = "email"
	programFlag    = "program"
	amountFlag     = "amount"
	purposeFlag    = "purpose"
	postalCodeFlag = "postal-code"
)

var loginFlags = map[string]cobraflags.Flag{
	usernameFlag: &cobraflags.StringFlag{Name: usernameFlag, Value: "", Usage: "Username"},
	passwordFlag: &cobraflags.StringFlag{Name: passwordFlag, Value: "", Usage: "Password"},
}

var submitFlags = map[string]cobraflags.Flag{
	nameFlag:    &cobraflags.StringFlag{Name: nameFlag, Value: "", Usage: "Applicant name"},
	emailFlag:   &cobraflags.StringFlag{Name: emailFlag, Value: "", Usage: "Applicant e-mail"},
	programFlag: &cobraflags.StringFlag{Name: programFlag, Value: "", Usage: "Program ID"},
	amountFlag:  &cobraflags.StringFlag{Name: amountFlag, Value: "", Usage: "Requested amount, e.g. 25.000,50"},
	purposeFlag: &cobraflags.StringFlag{Name: purposeFlag, Value: "", Usage: "Purpose of the funding"},
}

var eligibilityFlags = map[string]cobraflags.Flag{
	purposeFlag:    &cobraflags.StringFlag{Name: purposeFlag, Value: "", Usage: "Purpose of the funding"},
	amountFlag:     &cobraflags.StringFlag{Name: amountFlag, Value: "", Usage: "Requested amount, e.g. 25.000,50"},
	postalCodeFlag: &cobraflags.StringFlag{Name: postalCodeFlag, Value: "", Usage: "German postal code"},
}

func newAPICommands() []*cobra.Command {
	commands := []*cobra.Command{
		newAPICommand("login", "Authenticate and print the session", loginFlags,
			func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Login(ctx, loginFlags[usernameFlag].GetString(), loginFlags[passwordFlag].GetString())
			}),
		newAPICommand("me", "Resolve the session of --token", nil,
			func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Me(ctx)
			}),
		newAPICommand("programs", "List funding programs", nil,
			func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Programs(ctx)
			}),
		newAPICommand("applications", "List applications", nil,
			func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Applications(ctx)
			}),
		newAPICommand("submit", "Submit an application", submitFlags,
			func(ctx context.Context, c *client.Client) (interface{}, error) {
				amount, ok := eligibility.ParseAmount(submitFlags[amountFlag].GetString())
				if !ok {
					return nil, fmt.Errorf("invalid --%s %q", amountFlag, submitFlags[amountFlag].GetString())
				}
				return c.CreateApplication(ctx, client.NewApplication{
					ApplicantName:  submitFlags[nameFlag].GetString(),
					ApplicantEmail: submitFlags[emailFlag].GetString(),
					ProgramID:      submitFlags[programFlag].GetString(),
					Amount:         amount,
					Purpose:        submitFlags[purposeFlag].GetString(),
				})
			}),
		newAPICommand("eligibility", "Run the eligibility pre-screening", eligibilityFlags,
			func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.CheckEligibility(ctx, eligibility.RawInput{
					Purpose:    eligibilityFlags[purposeFlag].GetString(),
					Amount:     eligibilityFlags[amountFlag].GetString(),
					PostalCode: eligibilityFlags[postalCodeFlag].GetString(),
				})
			}),
		newAPICommand("reset", "Reseed the server store (officer token)", nil,
			func(ctx context.Context, c *client.Client) (interface{}, error) {
				if err := c.Reset(ctx); err != nil {
					return nil, err
				}
				return map[string]bool{"ok": true}, nil
			}),
	}
	return commands
}

func newAPICommand(
	use, short string,
	flags map[string]cobraflags.Flag,
	call func(ctx context.Context, c *client.Client) (interface{}, error),
) *cobra.Command {
	conn := newConnectionFlags()
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(conn)
			if err != nil {
				return err
			}

			result, err := call(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cobraflags.RegisterMap(cmd, conn)
	if flags != nil {
		cobraflags.RegisterMap(cmd, flags)
	}
	return cmd
}

func newClient(conn map[string]cobraflags.Flag) (*client.Client, error) {
	opts := []client.Option{client.WithToken(conn[tokenFlag].GetString())}

	if raw := conn[delayFlag].GetString(); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", delayFlag, raw, err)
		}
		opts = append(opts, client.WithSimulatedDelay(time.Duration(ms)*time.Millisecond))
	}
	if raw := conn[errorFlag].GetString(); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", errorFlag, raw, err)
		}
		opts = append(opts, client.WithSimulatedError(status))
	}

	return client.New(conn[urlFlag].GetString(), opts...), nil
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

package config

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// formSubmitBase is the AJAX base URL of formsubmit.co; the inbox address is
// appended as the last path segment.
const formSubmitBase = "https://formsubmit.co/ajax/"

// RelayEndpointFor returns the formsubmit.co endpoint delivering to inbox.
func RelayEndpointFor(inbox string) string {
	return formSubmitBase + strings.TrimSpace(inbox)
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Where contact messages are delivered.
	relayPrompt := promptui.Select{
		Label: "How should contact messages be delivered?",
		Items: []string{
			"formsubmit.co (enter your inbox address)",
			"custom relay (enter a full endpoint URL)",
		},
	}
	relayIdx, _, err := relayPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("relay selection: %w", err)
	}

	if relayIdx == 0 {
		inboxPrompt := promptui.Prompt{
			Label:    "Inbox address",
			Validate: validateAddress,
		}
		inbox, err := inboxPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("inbox address: %w", err)
		}
		cfg.Relay.Endpoint = RelayEndpointFor(inbox)
	} else {
		endpointPrompt := promptui.Prompt{
			Label:   "Relay endpoint URL",
			Default: DefaultRelayEndpoint,
		}
		endpoint, err := endpointPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("relay endpoint: %w", err)
		}
		cfg.Relay.Endpoint = strings.TrimSpace(endpoint)
	}

	// 2. Listener port.
	portPrompt := promptui.Prompt{
		Label:    "Port to serve on",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Optional content override.
	contentPrompt := promptui.Prompt{
		Label:   "Profile content file (leave blank for the built-in profile)",
		Default: "",
	}
	contentFile, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	cfg.Content.File = strings.TrimSpace(contentFile)

	// 4. Static export directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for `portfolio build`",
		Default: cfg.Site.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Site.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateAddress(s string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("not an email address")
	}
	return nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

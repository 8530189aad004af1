// Package plugin provides the entry point for relint plugins.
//
// Plugins use this package to register their RuleSet with the relint
// host. The Serve function is called from main() and handles all
// communication with the host process using HashiCorp's go-plugin
// library over net/rpc.
//
// Example plugin main.go:
//
//	package main
//
//	import (
//	    "github.com/relint-dev/relint-plugin-sdk/plugin"
//	    "github.com/relint-dev/relint-plugin-sdk/relint"
//	)
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &A11yRuleSet{
//	            BuiltinRuleSet: relint.BuiltinRuleSet{
//	                Name:    "jsx_a11y",
//	                Version: "0.1.0",
//	                Rules:   rules.Rules,
//	            },
//	        },
//	    })
//	}
package plugin

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/relint-dev/relint-plugin-sdk/relint"
)

// ServeOpts contains options for serving the plugin.
type ServeOpts struct {
	// RuleSet is the plugin's rule set implementation.
	RuleSet relint.RuleSet
}

// Serve starts the plugin server.
//
// This function registers the plugin's RuleSet and handles communication
// with the relint host process. It should be called from the plugin's
// main() function.
//
// The function blocks until the host disconnects. When invoked directly
// (outside of relint), the plugin will print a message and exit.
//
// Communication uses HashiCorp's go-plugin library, which provides:
// - Magic cookie handshake to prevent direct execution
// - Protocol versioning for compatibility
// - Multiplexed RPC between host and plugin
func Serve(opts *ServeOpts) {
	if opts == nil || opts.RuleSet == nil {
		// Nothing to serve
		return
	}

	// Validate the RuleSet is usable (fail fast on misconfiguration)
	_ = opts.RuleSet.RuleSetName()
	_ = opts.RuleSet.RuleSetVersion()
	_ = opts.RuleSet.RuleNames()

	// Check if we're being invoked by relint (via magic cookie)
	// If not, print a helpful message and exit
	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(opts.RuleSet)
		return
	}

	// Create a logger for the plugin
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	// Create the plugin map with our implementation
	pluginMap := map[string]plugin.Plugin{
		PluginName: &RuleSetPlugin{Impl: opts.RuleSet},
	}

	// Serve the plugin
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         pluginMap,
		Logger:          logger,
	})
}

// printDirectInvocationMessage prints a helpful message when the plugin
// is invoked directly instead of via relint.
func printDirectInvocationMessage(rs relint.RuleSet) {
	// Use simple writes since we don't want to pull in extra dependencies
	os.Stderr.WriteString("This is a relint plugin.\n\n")
	os.Stderr.WriteString("Plugin: " + rs.RuleSetName() + "\n")
	os.Stderr.WriteString("Version: " + rs.RuleSetVersion() + "\n")
	os.Stderr.WriteString("Rules:\n")
	for _, name := range rs.RuleNames() {
		os.Stderr.WriteString("  - " + name + "\n")
	}
	os.Stderr.WriteString("\nTo use this plugin, run it via relint:\n")
	os.Stderr.WriteString("  relint [options]\n\n")
	os.Stderr.WriteString("For more information, see: https://github.com/relint-dev/relint\n")
}

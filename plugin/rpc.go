// Package plugin provides RPC-based plugin communication for relint.
//
// This file implements the go-plugin Plugin interface over net/rpc,
// bridging the native relint.RuleSet interface across the process
// boundary between the relint host and a plugin.

package plugin

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	"github.com/relint-dev/relint-plugin-sdk/relint"
)

// Ensure RuleSetPlugin implements plugin.Plugin.
var _ plugin.Plugin = (*RuleSetPlugin)(nil)

// RuleSetPlugin is the go-plugin implementation for the RuleSet service.
// This is used by both the host (to create a client) and the plugin
// (to create a server).
type RuleSetPlugin struct {
	// Impl is the concrete implementation of the RuleSet interface.
	// Only used when serving (plugin side).
	Impl relint.RuleSet
}

// Server is called on the plugin side to create the RPC server.
func (p *RuleSetPlugin) Server(_ *plugin.MuxBroker) (any, error) {
	return &RuleSetRPCServer{impl: p.Impl}, nil
}

// Client is called on the host side to create the RPC client.
func (p *RuleSetPlugin) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &RuleSetRPCClient{client: c}, nil
}

// RuleSetRPCServer serves a relint.RuleSet over net/rpc.
// This runs inside the plugin process.
type RuleSetRPCServer struct {
	impl relint.RuleSet
}

// RuleSetName returns the name of the served ruleset.
func (s *RuleSetRPCServer) RuleSetName(_ any, resp *string) error {
	*resp = s.impl.RuleSetName()
	return nil
}

// RuleSetVersion returns the version of the served ruleset.
func (s *RuleSetRPCServer) RuleSetVersion(_ any, resp *string) error {
	*resp = s.impl.RuleSetVersion()
	return nil
}

// RuleNames returns the names of all rules in the served ruleset.
func (s *RuleSetRPCServer) RuleNames(_ any, resp *[]string) error {
	*resp = s.impl.RuleNames()
	return nil
}

// VersionConstraint returns the relint version constraint of the ruleset.
func (s *RuleSetRPCServer) VersionConstraint(_ any, resp *string) error {
	*resp = s.impl.VersionConstraint()
	return nil
}

// CheckHostVersion verifies the host version against the ruleset's
// constraint. The error, if any, travels back as the RPC error.
func (s *RuleSetRPCServer) CheckHostVersion(version string, _ *struct{}) error {
	return s.impl.CheckHostVersion(version)
}

// ApplyConfig applies a configuration document received from the host.
func (s *RuleSetRPCServer) ApplyConfig(args *ApplyConfigArgs, _ *struct{}) error {
	return s.impl.ApplyConfig(fromWireConfig(args))
}

// Ensure RuleSetRPCClient implements relint.RuleSet.
var _ relint.RuleSet = (*RuleSetRPCClient)(nil)

// RuleSetRPCClient is the host-side proxy for a plugin's RuleSet.
type RuleSetRPCClient struct {
	client *rpc.Client
}

// RuleSetName returns the name of the remote ruleset.
func (c *RuleSetRPCClient) RuleSetName() string {
	var resp string
	if err := c.client.Call("Plugin.RuleSetName", new(any), &resp); err != nil {
		return ""
	}
	return resp
}

// RuleSetVersion returns the version of the remote ruleset.
func (c *RuleSetRPCClient) RuleSetVersion() string {
	var resp string
	if err := c.client.Call("Plugin.RuleSetVersion", new(any), &resp); err != nil {
		return ""
	}
	return resp
}

// RuleNames returns the names of all rules in the remote ruleset.
func (c *RuleSetRPCClient) RuleNames() []string {
	var resp []string
	if err := c.client.Call("Plugin.RuleNames", new(any), &resp); err != nil {
		return nil
	}
	return resp
}

// VersionConstraint returns the relint version constraint of the remote
// ruleset.
func (c *RuleSetRPCClient) VersionConstraint() string {
	var resp string
	if err := c.client.Call("Plugin.VersionConstraint", new(any), &resp); err != nil {
		return ""
	}
	return resp
}

// CheckHostVersion verifies the host version against the remote ruleset's
// constraint.
func (c *RuleSetRPCClient) CheckHostVersion(version string) error {
	return c.client.Call("Plugin.CheckHostVersion", version, &struct{}{})
}

// ApplyConfig sends a resolved configuration document to the remote
// ruleset.
func (c *RuleSetRPCClient) ApplyConfig(config *relint.Config) error {
	return c.client.Call("Plugin.ApplyConfig", toWireConfig(config), &struct{}{})
}

/*
Package xdomcp exposes desktop automation over the Model Context Protocol.

It translates MCP tool calls (move, click, type, scroll, window inspection)
into invocations of the external xdotool utility and returns the utility's
parsed output as tool results. The server is stateless: every call is one
independent subprocess invocation with no session state, queuing, or retry.

# Architecture

  - internal/xdo: pure translation between parameters and xdotool argv /
    output (the only place that knows xdotool's command grammar).
  - pkg/domain: typed parameters, closed direction/search variants,
    parsed-output structures.
  - pkg/ports: the Executor interface, the injectable subprocess boundary.
  - pkg/adapters/process: the os/exec Executor.
  - pkg/adapters/mcp: the operation catalog, parameter validation, and
    result shaping on top of the MCP runtime.

Use the xdomcp binary (cmd/xdomcp) to serve over stdio or SSE.
*/
package xdomcp

// Version is the release version of xdomcp.
const Version = "0.2.0"

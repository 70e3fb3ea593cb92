/*
Package ports defines the driven ports (interfaces) for the xdomcp server.

These interfaces decouple the dispatch core from external implementations,
allowing the tool handlers to run against a real xdotool process in
production and a scripted fake in tests.

# Key Interfaces

  - Executor: Responsible for running the automation utility with an
    argument vector and capturing its outcome.
*/
package ports

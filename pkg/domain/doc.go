/*
Package domain contains the core domain models for the xdomcp automation server.

It defines the typed parameter structures for each automation operation, the
closed variants parsed from wire strings (scroll directions, window-search
modes), and the structures produced by parsing xdotool output. This package is
kept pure and free of external dependencies like I/O or process execution,
following Hexagonal Architecture principles.

# Key Entities

  - Parameter structs (MoveMouseParams, ClickParams, ...): one per operation,
    optional fields carrying explicit defaults evaluated at definition time.
  - Direction / SearchType: closed variants parsed from wire strings. Note the
    deliberate asymmetry: Direction parsing is strict, SearchType parsing
    falls back to SearchAny.
  - MouseLocation / WindowGeometry: results of parsing xdotool shell output.
*/
package domain

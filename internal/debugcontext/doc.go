// Package debugcontext provides a passive, append-only data structure that
// accumulates diagnostic entries (errors, warnings, info, traces) as the
// assembler pipeline progresses, and a renderer (Render/RenderAll) that
// turns those entries into the caret-underlined report the CLI prints.
package debugcontext

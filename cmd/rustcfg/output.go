package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"rustcfg/internal/cargo"
	"rustcfg/internal/resolve"
)

// Payload field names are the stable wire contract for editor consumers;
// the same snake_case keys are used for both JSON and msgpack.
type configPayload struct {
	ProjectRoot    string   `json:"project_root" msgpack:"project_root"`
	CrateRoot      string   `json:"crate_root,omitempty" msgpack:"crate_root"`
	CrateKind      string   `json:"crate_kind" msgpack:"crate_kind"`
	BinaryName     string   `json:"binary_name,omitempty" msgpack:"binary_name,omitempty"`
	CheckTests     bool     `json:"check_tests" msgpack:"check_tests"`
	LibSearchPaths []string `json:"lib_search_paths" msgpack:"lib_search_paths"`
}

type targetPayload struct {
	Kind    string `json:"kind" msgpack:"kind"`
	Name    string `json:"name" msgpack:"name"`
	SrcPath string `json:"src_path" msgpack:"src_path"`
}

var (
	labelColor = color.New(color.FgCyan)
	valueColor = color.New(color.Bold)
)

func configToPayload(cfg *resolve.Config) configPayload {
	return configPayload{
		ProjectRoot:    cfg.ProjectRoot,
		CrateRoot:      cfg.CrateRoot,
		CrateKind:      cfg.Kind.String(),
		BinaryName:     cfg.BinaryName,
		CheckTests:     cfg.CheckTests,
		LibSearchPaths: cfg.LibSearchPaths,
	}
}

func targetsToPayload(targets []cargo.Target) []targetPayload {
	out := make([]targetPayload, 0, len(targets))
	for _, t := range targets {
		out = append(out, targetPayload{Kind: t.Kind.String(), Name: t.Name, SrcPath: t.SrcPath})
	}
	return out
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "msgpack":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or msgpack)", format)
	}
}

func renderConfig(w io.Writer, cfg *resolve.Config, format string) error {
	payload := configToPayload(cfg)
	switch format {
	case "json":
		return renderJSON(w, payload)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(payload)
	}
	printField(w, "project root", payload.ProjectRoot)
	crateRoot := payload.CrateRoot
	if crateRoot == "" {
		crateRoot = "(none)"
	}
	printField(w, "crate root", crateRoot)
	printField(w, "crate kind", payload.CrateKind)
	if payload.BinaryName != "" {
		printField(w, "binary name", payload.BinaryName)
	}
	printField(w, "check tests", fmt.Sprintf("%v", payload.CheckTests))
	printField(w, "search paths", strings.Join(payload.LibSearchPaths, "\n              "))
	return nil
}

func renderTargets(w io.Writer, targets []cargo.Target, format string) error {
	payload := targetsToPayload(targets)
	switch format {
	case "json":
		return renderJSON(w, payload)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(payload)
	}
	for _, t := range payload {
		fmt.Fprintf(w, "%s %s  %s\n", labelColor.Sprintf("%-4s", t.Kind), valueColor.Sprint(t.Name), t.SrcPath)
	}
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprintf("%-13s", label+":"), valueColor.Sprint(value))
}

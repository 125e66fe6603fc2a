package main

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MasonDill/waveform-visualizer/internal/busframe"
	"github.com/MasonDill/waveform-visualizer/internal/config"
	"github.com/MasonDill/waveform-visualizer/internal/j1939"
	"github.com/MasonDill/waveform-visualizer/internal/protocol"
	"github.com/MasonDill/waveform-visualizer/internal/render"
	"github.com/MasonDill/waveform-visualizer/internal/server"
	"github.com/MasonDill/waveform-visualizer/internal/ui"
	"github.com/MasonDill/waveform-visualizer/internal/wizard/tui"
)

var (
	probeFlag    string
	extendedFlag bool
	outputFlag   string
	titleFlag    string

	frameID      string
	frameData    string
	frameEncOnly bool

	serveAddr string
)

func init() {
	renderCmd.Flags().StringVarP(&probeFlag, "probe", "p", "", "probe configuration: CAN_H, CAN_L or DIFFERENTIAL")
	renderCmd.Flags().BoolVarP(&extendedFlag, "extended", "e", false, "use the 29-bit extended identifier layout")
	renderCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write a plot file (.png, .svg or .pdf) instead of a terminal trace")
	renderCmd.Flags().StringVarP(&titleFlag, "title", "t", "", "plot title")

	frameCmd.Flags().StringVar(&frameID, "id", "", "CAN identifier (decimal or 0x-prefixed hex)")
	frameCmd.Flags().StringVar(&frameData, "data", "", "data bytes as hex (first byte is carried by the layout)")
	frameCmd.Flags().BoolVar(&frameEncOnly, "payload-only", false, "print the encoded payload without rendering")
	frameCmd.Flags().StringVarP(&probeFlag, "probe", "p", "", "probe configuration: CAN_H, CAN_L or DIFFERENTIAL")
	frameCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write a plot file instead of a terminal trace")
	_ = frameCmd.MarkFlagRequired("id")

	fieldsCmd.Flags().BoolVarP(&extendedFlag, "extended", "e", false, "show the 29-bit extended identifier layout")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, localhost:8173)")
	serveCmd.Flags().StringVarP(&probeFlag, "probe", "p", "", "default probe for requests that omit one")
	serveCmd.Flags().BoolVarP(&extendedFlag, "extended", "e", false, "default identifier width for requests that omit one")
}

// resolveProbe picks the probe from the flag, falling back to the user's
// configured default, falling back to CAN_H.
func resolveProbe(prefs *config.Preferences) (j1939.ProbeConfiguration, error) {
	name := probeFlag
	if name == "" && prefs != nil && prefs.DefaultProbe != "" {
		name = prefs.DefaultProbe
	}
	if name == "" {
		return j1939.ProbeCanH, nil
	}
	return j1939.ParseProbe(name)
}

var renderCmd = &cobra.Command{
	Use:   "render <payload>",
	Short: "Render a hex payload as a waveform",
	Long: `Render a hex payload as the electrical waveform a probe would measure.

The payload may carry an 0x prefix and must cover the full frame
(12 hex characters for the standard layout). Prefix the argument with
@ to render a payload saved in the config file, e.g. 'waveviz render @idle'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}

		payload := args[0]
		extended := extendedFlag
		if name, ok := strings.CutPrefix(payload, "@"); ok {
			saved, found := registry.Payloads[name]
			if !found {
				return fmt.Errorf("no saved payload named %q", name)
			}
			payload = saved.Hex
			extended = saved.Extended
			if probeFlag == "" && saved.Probe != "" {
				probeFlag = saved.Probe
			}
		}

		probe, err := resolveProbe(registry.Preferences)
		if err != nil {
			return err
		}
		cfg, err := j1939.New(probe, extended)
		if err != nil {
			return err
		}
		wf, err := cfg.GenerateWaveform(payload)
		if err != nil {
			return err
		}
		return emitWaveform(cfg, wf, probe)
	},
}

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Build a frame payload from a CAN identifier and data bytes",
	Long: `Build the layout's hex payload from a CAN frame description and render it.

The identifier width is derived from the identifier value: IDs above
0x7FF use the 29-bit extended layout. The frame carries a single data
byte; additional --data bytes only set the length field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(frameID, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid identifier %q: %w", frameID, err)
		}
		var data []byte
		if frameData != "" {
			data, err = hex.DecodeString(frameData)
			if err != nil {
				return fmt.Errorf("invalid data bytes %q: %w", frameData, err)
			}
		}

		f, err := busframe.NewFrame(uint32(id), data)
		if err != nil {
			return err
		}
		payload, err := busframe.Encode(f)
		if err != nil {
			return err
		}
		fmt.Printf("payload: 0x%s\n", payload)
		if frameEncOnly {
			return nil
		}

		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		probe, err := resolveProbe(registry.Preferences)
		if err != nil {
			return err
		}
		cfg, err := j1939.New(probe, f.IsExtended)
		if err != nil {
			return err
		}
		wf, err := cfg.GenerateWaveform(payload)
		if err != nil {
			return err
		}
		return emitWaveform(cfg, wf, probe)
	},
}

// emitWaveform writes the waveform either as a plot file or a terminal trace.
func emitWaveform(cfg *protocol.Config, wf *protocol.Waveform, probe j1939.ProbeConfiguration) error {
	if outputFlag != "" {
		opts := render.DefaultOptions()
		if titleFlag != "" {
			opts.Title = titleFlag
		} else {
			opts.Title = fmt.Sprintf("J1939 Waveform (%s)", probe)
		}
		if err := render.Write(outputFlag, wf, cfg.Period, opts); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outputFlag)
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("J1939 waveform · %s · %d bits", probe, wf.Len())))
	fmt.Print(ui.RenderASCII(wf, ui.GetTerminalWidth()))
	return nil
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the frame layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		frame := j1939.NewFrame(extendedFlag)
		fmt.Println(ui.HeaderStyle.Render("J1939 frame layout"))
		offset := 0
		for _, f := range frame.Fields {
			fmt.Printf("  %s %s\n",
				ui.FieldNameStyle.Render(fmt.Sprintf("%-8s", f.Name)),
				ui.ValueStyle.Render(fmt.Sprintf("%2d bits at offset %2d", f.Length, offset)))
			offset += f.Length
		}
		fmt.Println(ui.MutedStyle.Render(fmt.Sprintf(
			"  total %d bits · minimum payload %d hex chars", frame.TotalBits(), frame.MinHexChars())))
		return nil
	},
}

var payloadsCmd = &cobra.Command{
	Use:   "payloads",
	Short: "Manage saved payloads",
}

var payloadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved payloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		if len(registry.Payloads) == 0 {
			fmt.Println("no saved payloads")
			return nil
		}
		names := make([]string, 0, len(registry.Payloads))
		for name := range registry.Payloads {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p := registry.Payloads[name]
			fmt.Printf("  %s 0x%s  %s\n",
				ui.FieldNameStyle.Render(fmt.Sprintf("%-16s", name)), p.Hex,
				ui.MutedStyle.Render(p.Probe))
		}
		return nil
	},
}

var payloadsSaveCmd = &cobra.Command{
	Use:   "save <name> <payload>",
	Short: "Save a payload under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := protocol.StripHexPrefix(args[1])

		// Reject payloads the layout cannot parse before persisting them.
		cfg, err := j1939.New(j1939.ProbeCanH, extendedFlag)
		if err != nil {
			return err
		}
		if _, err := cfg.GenerateWaveform(payload); err != nil {
			return err
		}

		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		probe, err := resolveProbe(registry.Preferences)
		if err != nil {
			return err
		}
		registry.SetPayload(args[0], payload, probe.String(), extendedFlag, "")
		if err := registry.Save(); err != nil {
			return err
		}
		fmt.Printf("saved %q\n", args[0])
		return nil
	},
}

var payloadsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		if !registry.DeletePayload(args[0]) {
			return fmt.Errorf("no saved payload named %q", args[0])
		}
		if err := registry.Save(); err != nil {
			return err
		}
		fmt.Printf("deleted %q\n", args[0])
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve waveform generation over a websocket endpoint",
	Long: `Serve waveform generation for browser-based renderers.

Clients connect to ws://<addr>/ws and send JSON requests like
{"payload": "7ff15aa0007f", "probe": "CAN_H"}; each request is answered
with the generated waveform or an error payload.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		probe, err := resolveProbe(registry.Preferences)
		if err != nil {
			return err
		}
		addr := serveAddr
		if addr == "" && registry.Preferences != nil {
			addr = registry.Preferences.ServeAddr
		}
		if addr == "" {
			addr = "localhost:8173"
		}

		srv, err := server.New(&server.Config{
			Addr:     addr,
			Probe:    probe,
			Extended: extendedFlag,
		})
		if err != nil {
			return err
		}
		return srv.Start()
	},
}

func init() {
	payloadsCmd.AddCommand(payloadsListCmd)
	payloadsCmd.AddCommand(payloadsSaveCmd)
	payloadsCmd.AddCommand(payloadsRmCmd)
	payloadsSaveCmd.Flags().BoolVarP(&extendedFlag, "extended", "e", false, "payload uses the 29-bit extended identifier layout")
}

func runWizard(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}
	return tui.Run(registry.Preferences)
}

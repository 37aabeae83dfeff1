package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gitlab.com/gomidi/midi/v2"

	"jdximcp/jdxi"
)

func runMCP(inPortIdx int, conn *jdxi.Conn) {

	s := server.NewMCPServer(
		"JD-Xi MCP",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	reg := jdxi.DefaultRegistry()

	identifyTool := mcp.NewTool("jdxi_identify",
		mcp.WithDescription("Runs the SysEx identity handshake and returns the JD-Xi firmware version."),
	)
	s.AddTool(identifyTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp] Handling identify request.")

		id, err := conn.Identify(midi.GetInPorts()[inPortIdx], 5*time.Second)
		if err != nil {
			return nil, fmt.Errorf("identity handshake failed: %v", err)
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"manufacturer 0x%02X, family %02X %02X, firmware %s",
			id.Manufacturer, id.Family[0], id.Family[1], id.Version)), nil
	})

	listTool := mcp.NewTool("jdxi_list-parameters",
		mcp.WithDescription("Lists the editable parameter names for one JD-Xi synth engine."),
		mcp.WithString("synth", mcp.Required(),
			mcp.Description("One of: analog, digital1, digital2, drums, vocalfx, program.")),
	)
	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		synthName, err := request.RequireString("synth")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		synth, err := jdxi.ParseSynthType(synthName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(strings.Join(reg.Names(synth), "\n")), nil
	})

	getTool := mcp.NewTool("jdxi_get-parameter",
		mcp.WithDescription("Requests one parameter value from the JD-Xi and returns the raw and display values."),
		mcp.WithString("synth", mcp.Required(), mcp.Description("Synth engine name.")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Parameter name, e.g. cutoff.")),
		mcp.WithNumber("partial", mcp.Description("Partial/key index, default 0.")),
	)
	s.AddTool(getTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp] Handling get parameter request.")

		synth, name, partial, errResult := paramArgs(request)
		if errResult != nil {
			return errResult, nil
		}

		stop, err := conn.Listen(midi.GetInPorts()[inPortIdx])
		if err != nil {
			return nil, fmt.Errorf("failed to listen: %v", err)
		}
		defer stop()

		if err := conn.RequestParameter(synth, name, partial); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if v, ok := conn.CurrentValue(synth, name, partial); ok {
				p, err := reg.Lookup(synth, name)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(fmt.Sprintf("%d (%s)", v, p.DisplayValue(v))), nil
			}
			time.Sleep(50 * time.Millisecond)
		}
		return nil, fmt.Errorf("timed out waiting for %s %s", synth, name)
	})

	setTool := mcp.NewTool("jdxi_set-parameter",
		mcp.WithDescription("Writes one parameter value to the JD-Xi."),
		mcp.WithString("synth", mcp.Required(), mcp.Description("Synth engine name.")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Parameter name, e.g. cutoff.")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("Raw value within the parameter's range.")),
		mcp.WithNumber("partial", mcp.Description("Partial/key index, default 0.")),
	)
	s.AddTool(setTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp] Handling set parameter request.")

		synth, name, partial, errResult := paramArgs(request)
		if errResult != nil {
			return errResult, nil
		}
		value, err := request.RequireInt("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := conn.SetParameter(synth, name, value, partial); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("Parameter sent successfully."), nil
	})

	playNotesTool := mcp.NewTool("jdxi_play-test-notes",
		mcp.WithDescription("Plays test notes on the JD-Xi to audition the current patch."),
	)
	s.AddTool(playNotesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := playTestNotes(conn, jdxiChannel); err != nil {
			return nil, fmt.Errorf("failed to play test notes: %v", err)
		}
		return mcp.NewToolResultText("Test notes played successfully."), nil
	})

	playTextTool := mcp.NewTool("jdxi_play-notes",
		mcp.WithDescription("Plays a sequence of note names (e.g. \"C4 Eb4 G4 r Bb4\") on the JD-Xi."),
		mcp.WithString("notes", mcp.Required(), mcp.Description("Note names separated by spaces or commas; 'r' is a rest.")),
	)
	s.AddTool(playTextTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		notes, err := request.RequireString("notes")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := playNotesFromText(conn, jdxiChannel, notes); err != nil {
			return nil, fmt.Errorf("failed to play notes: %v", err)
		}
		return mcp.NewToolResultText("Notes played successfully."), nil
	})

	log.Println("Starting JD-Xi MCP server...")

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}

}

func paramArgs(request mcp.CallToolRequest) (jdxi.SynthType, string, int, *mcp.CallToolResult) {
	synthName, err := request.RequireString("synth")
	if err != nil {
		return 0, "", 0, mcp.NewToolResultError(err.Error())
	}
	synth, err := jdxi.ParseSynthType(synthName)
	if err != nil {
		return 0, "", 0, mcp.NewToolResultError(err.Error())
	}
	name, err := request.RequireString("name")
	if err != nil {
		return 0, "", 0, mcp.NewToolResultError(err.Error())
	}
	partial := request.GetInt("partial", 0)
	return synth, name, partial, nil
}

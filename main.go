package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"jdximcp/jdxi"
)

func main() {
	const nameHint = "jd-xi"

	log.Println("Available MIDI outputs:")
	log.Print(midi.GetOutPorts().String())

	portIdx, err := findOutPort(nameHint)
	if err != nil {
		log.Fatalf("could not find JD-Xi MIDI out port: %v", err)
	}

	inPortIdx, err := findInPort(nameHint)
	if err != nil {
		log.Fatalf("could not find JD-Xi MIDI in port: %v", err)
	}

	conn, closer, err := jdxi.OpenConn(jdxi.DeviceID, portIdx, jdxi.DefaultRegistry())
	if err != nil {
		log.Fatalf("failed to open JD-Xi output: %v", err)
	}
	defer closer()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "identify":
			identify(inPortIdx, conn)
			return
		case "get":
			getParameter(inPortIdx, conn, os.Args[2:])
			return
		case "set":
			setParameter(conn, os.Args[2:])
			return
		case "watch":
			watch(inPortIdx, conn)
			return
		case "play":
			if err := playTestNotes(conn, jdxiChannel); err != nil {
				log.Fatalf("failed to play test notes: %v", err)
			}
			return
		case "mcp":
			runMCP(inPortIdx, conn)
			return

		default:
			log.Fatalf("unknown command %q", os.Args[1])
		}
	}
	log.Println("exiting: no command specified")
}

// jdxiChannel is the part the audition notes go to (digital synth 1).
const jdxiChannel uint8 = 0

func findOutPort(nameFragment string) (int, error) {
	outs := midi.GetOutPorts()
	if len(outs) == 0 {
		return -1, fmt.Errorf("no MIDI outputs available")
	}

	lower := strings.ToLower(nameFragment)
	for _, out := range outs {
		if strings.Contains(strings.ToLower(out.String()), lower) {
			return out.Number(), nil
		}
	}

	return -1, fmt.Errorf("no MIDI output contains %q", nameFragment)
}

func findInPort(nameFragment string) (int, error) {
	ins := midi.GetInPorts()
	if len(ins) == 0 {
		return -1, fmt.Errorf("no MIDI inputs available")
	}

	lower := strings.ToLower(nameFragment)
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), lower) {
			return in.Number(), nil
		}
	}

	return -1, fmt.Errorf("no MIDI input contains %q", nameFragment)
}

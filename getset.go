package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"gitlab.com/gomidi/midi/v2"

	"jdximcp/jdxi"
)

func identify(inPortIdx int, conn *jdxi.Conn) {
	id, err := conn.Identify(midi.GetInPorts()[inPortIdx], 5*time.Second)
	if err != nil {
		log.Fatalf("identity handshake failed: %v", err)
	}
	log.Printf("Manufacturer 0x%02X, family %02X %02X, firmware %s",
		id.Manufacturer, id.Family[0], id.Family[1], id.Version)
	fmt.Println(id.Version)
}

// getParameter requests one parameter and waits for the device's DT1 reply
// to land in the store.
func getParameter(inPortIdx int, conn *jdxi.Conn, args []string) {
	synth, name, partial := parseParamArgs(args, 0)

	stop, err := conn.Listen(midi.GetInPorts()[inPortIdx])
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer stop()

	if err := conn.RequestParameter(synth, name, partial); err != nil {
		log.Fatalf("failed to request %s %s: %v", synth, name, err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if v, ok := conn.CurrentValue(synth, name, partial); ok {
			p, _ := jdxi.DefaultRegistry().Lookup(synth, name)
			log.Printf("%s %s (partial %d) = %d (%s)", synth, name, partial, v, p.DisplayValue(v))
			fmt.Println(v)
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	log.Fatalf("timed out waiting for %s %s", synth, name)
}

func setParameter(conn *jdxi.Conn, args []string) {
	if len(args) < 3 {
		log.Fatalf("usage: set <synth> <name> <value> [partial]")
	}
	synth, err := jdxi.ParseSynthType(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}
	name := args[1]
	value, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalf("invalid value %q: %v", args[2], err)
	}
	partial := 0
	if len(args) > 3 {
		if partial, err = strconv.Atoi(args[3]); err != nil {
			log.Fatalf("invalid partial %q: %v", args[3], err)
		}
	}

	if err := conn.SetParameter(synth, name, value, partial); err != nil {
		log.Fatalf("failed to set %s %s: %v", synth, name, err)
	}
	log.Printf("sent %s %s (partial %d) = %d", synth, name, partial, value)
}

// watch prints every parameter update the device reports until interrupted.
func watch(inPortIdx int, conn *jdxi.Conn) {
	reg := jdxi.DefaultRegistry()

	conn.OnUpdate = func(addr jdxi.Address, value int) {
		if p, ok := reg.LookupAddress(addr); ok {
			log.Printf("update %s  %s = %d (%s)", addr, p.Name, value, p.DisplayValue(value))
			return
		}
		log.Printf("update %s = %d", addr, value)
	}
	conn.OnDecodeError = func(err error) {
		log.Printf("dropped message: %v", err)
	}

	stop, err := conn.Listen(midi.GetInPorts()[inPortIdx])
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer stop()

	log.Println("watching for parameter updates, Ctrl-C to stop")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}

func parseParamArgs(args []string, defaultPartial int) (jdxi.SynthType, string, int) {
	if len(args) < 2 {
		log.Fatalf("usage: <synth> <name> [partial]  (synths: analog digital1 digital2 drums vocalfx program)")
	}
	synth, err := jdxi.ParseSynthType(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}
	partial := defaultPartial
	if len(args) > 2 {
		partial, err = strconv.Atoi(args[2])
		if err != nil {
			log.Fatalf("invalid partial %q: %v", args[2], err)
		}
	}
	return synth, args[1], partial
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/saylorsolutions/edgerelays/cmd/internal"
	"github.com/saylorsolutions/edgerelays/pkg/demo"
	"github.com/saylorsolutions/edgerelays/pkg/payload"
	"github.com/saylorsolutions/edgerelays/pkg/relays"
	"github.com/saylorsolutions/edgerelays/pkg/xor"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		countFlag   bool
		verboseFlag bool
		versionFlag bool
		keyFile     string
		blobFile    string
	)
	flags := flag.NewFlagSet("edgerelays", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&countFlag, "count", "c", false, "Print the estimated number of relays instead of the relay list.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Enables debug logging to stderr.")
	flags.BoolVar(&versionFlag, "version", false, "Prints version information.")
	flags.StringVarP(&keyFile, "key", "k", "", "Raw 64 byte obfuscated key file to use instead of the embedded key. Requires --blob.")
	flags.StringVarP(&blobFile, "blob", "b", "", "Raw encrypted payload file to use instead of the embedded payload. Requires --key.")
	flags.Usage = func() {
		fmt.Printf(`
edgerelays prints the edge relay list embedded in this binary, decrypting it with the embedded obfuscated key.
Externally produced key and payload files may be given to check the output of a bundling step before it's embedded.

USAGE:  edgerelays [FLAGS]

FLAGS:
%s
SECURITY:
    The payload tag is not verified, so a wrong key produces garbage output rather than an error.
The key halves are obfuscation only, anyone with the binary can recover the key.
`, flags.FlagUsages())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.EchoTo(os.Stdout, "edgerelays %s (%s)", version, demo.Version())
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	cache, err := newCache(keyFile, blobFile, log)
	if err != nil {
		internal.Fatal("Failed to load relay data: %v", err)
	}
	if countFlag {
		count, err := cache.RecordCount()
		if err != nil {
			internal.Fatal("Failed to decrypt relay data: %v", err)
		}
		internal.EchoTo(os.Stdout, "%d", count)
		return
	}
	text, err := cache.Get()
	if err != nil {
		internal.Fatal("Failed to decrypt relay data: %v", err)
	}
	internal.EchoTo(os.Stdout, "%s", text)
}

func newCache(keyFile, blobFile string, log *logrus.Logger) (*relays.Cache, error) {
	switch {
	case len(keyFile) == 0 && len(blobFile) == 0:
		log.Debug("Using embedded relay data")
		return relays.NewEmbeddedCache(relays.WithLogger(log))
	case len(keyFile) == 0 || len(blobFile) == 0:
		return nil, errors.New("--key and --blob must be given together")
	}

	raw, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, err
	}
	m, err := xor.ParseMaterial(raw)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(blobFile)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"key":  keyFile,
		"blob": blobFile,
	}).Debug("Using external relay data")
	return relays.NewCache(relays.EmbeddedLoader(&m, payload.Encrypted(data)), relays.WithLogger(log))
}

package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/sagernet/sing-fetch/common"
	"github.com/sagernet/sing-fetch/common/log"
	"github.com/sagernet/sing-fetch/common/task"
	"github.com/sagernet/sing-fetch/fetch"
	"github.com/sagernet/sing-fetch/fetch/mimesniff"
	"github.com/sagernet/sing-fetch/fetch/streams"

	"github.com/spf13/cobra"
)

var logger = log.NewLogger("body-convert")

type Flags struct {
	ContentType string
	As          string
	Stream      bool
	ChunkSize   int
}

func main() {
	flags := new(Flags)

	cmd := &cobra.Command{
		Use:   "body-convert [file]",
		Short: "read a payload as a fetch body and convert it to a representation",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.ContentType, "content-type", "t", "", "Set the payload content type.")
	cmd.Flags().StringVarP(&flags.As, "as", "a", "text", "Set the target representation (text, json, form-data, blob, array-buffer).")
	cmd.Flags().BoolVar(&flags.Stream, "stream", false, "Consume the payload as a chunked stream instead of buffering it up front.")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", 32*1024, "Set the chunk size used with --stream.")

	common.Must(cmd.Execute())
}

type payload struct {
	body     *fetch.Body
	mimeType *mimesniff.MimeType
}

func (p *payload) Body() *fetch.Body {
	return p.body
}

func (p *payload) MimeType() *mimesniff.MimeType {
	return p.mimeType
}

func run(flags *Flags, args []string) {
	var input io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			logger.Fatal(err)
		}
		defer file.Close()
		input = file
	}

	holder := new(payload)
	if flags.ContentType != "" {
		mimeType, err := mimesniff.Parse(flags.ContentType)
		if err != nil {
			logger.Fatal("parse content type: ", err)
		}
		holder.mimeType = mimeType
	}
	if flags.Stream {
		holder.body = fetch.StreamBody(streams.New(readChunks(input, flags.ChunkSize)))
	} else {
		data, err := io.ReadAll(input)
		if err != nil {
			logger.Fatal("read input: ", err)
		}
		holder.body = fetch.BufferedBody(data)
	}

	destination := task.NewDestination()
	ctx := context.Background()

	switch flags.As {
	case "text":
		text, err := fetch.ConsumeText(holder, destination).Await(ctx)
		if err != nil {
			logger.Fatal(err)
		}
		common.Must1(os.Stdout.WriteString(text))
	case "json":
		value, err := fetch.ConsumeJSON(holder, destination).Await(ctx)
		if err != nil {
			logger.Fatal(err)
		}
		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			logger.Fatal(err)
		}
		common.Must1(os.Stdout.Write(encoded))
		common.Must1(os.Stdout.WriteString("\n"))
	case "form-data":
		formData, err := fetch.ConsumeFormData(holder, destination).Await(ctx)
		if err != nil {
			logger.Fatal(err)
		}
		for _, entry := range formData.Entries() {
			if entry.IsFile() {
				logger.Info(entry.Name, ": file ", entry.Filename, " (", entry.ContentType, ", ", len(entry.Value), " bytes)")
			} else {
				logger.Info(entry.Name, ": ", string(entry.Value))
			}
		}
	case "blob":
		blob, err := fetch.ConsumeBlob(holder, destination).Await(ctx)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Info("blob: ", blob.Size(), " bytes, type \"", blob.ContentType(), "\"")
	case "array-buffer":
		buffer, err := fetch.ConsumeArrayBuffer(holder, destination).Await(ctx)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Info("buffer: ", buffer.Len(), " bytes")
	default:
		logger.Fatal("unknown representation: ", flags.As)
	}
}

func readChunks(reader io.Reader, chunkSize int) streams.PullFunc {
	return func() ([]byte, error) {
		chunk := make([]byte, chunkSize)
		n, err := reader.Read(chunk)
		if n > 0 {
			return chunk[:n], nil
		}
		if err != nil {
			return nil, err
		}
		return nil, nil
	}
}

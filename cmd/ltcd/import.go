package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/logic/lchain"
	"github.com/Litecoindark/LTCD/model/block"
)

func importHeadersFile(ctx context.Context, processor *lchain.HeaderProcessor, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open headers file %s", path)
	}
	defer file.Close()

	return importHeaders(ctx, processor, file)
}

// importHeaders reads one header per line: the hex encoded 80 byte header,
// optionally followed by the block's transaction count. Blank lines and
// lines starting with # are skipped.
func importHeaders(ctx context.Context, processor *lchain.HeaderProcessor, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return count, err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		header, txCount, err := parseHeaderLine(fields)
		if err != nil {
			return count, errors.Wrapf(err, "line %d", line)
		}
		if _, err := processor.ProcessBlockHeader(header, txCount); err != nil {
			log.Error("header %s on line %d rejected: %v", header.GetHash(), line, err)
			return count, errors.Wrapf(err, "line %d", line)
		}
		count++
	}

	return count, scanner.Err()
}

func parseHeaderLine(fields []string) (*block.BlockHeader, int32, error) {
	raw, err := hex.DecodeString(fields[0])
	if err != nil {
		return nil, 0, errors.Wrap(err, "decode header")
	}

	header := block.NewBlockHeader()
	reader := bytes.NewReader(raw)
	if err := header.Unserialize(reader); err != nil {
		return nil, 0, errors.Wrap(err, "unserialize header")
	}
	if reader.Len() != 0 {
		return nil, 0, errors.Errorf("%d trailing bytes after header", reader.Len())
	}

	txCount := int64(1)
	if len(fields) > 1 {
		txCount, err = strconv.ParseInt(fields[1], 10, 32)
		if err != nil || txCount < 1 {
			return nil, 0, errors.Errorf("bad transaction count %q", fields[1])
		}
	}

	return header, int32(txCount), nil
}

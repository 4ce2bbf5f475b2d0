package query

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"strings"
)

// tokenPrefix is the version header of the encoded reference token.
// Consumers reject tokens whose header they do not recognize, so the
// prefix doubles as a format version.
const tokenPrefix = "QB1."

// The token body is a flate-compressed, base64url-encoded key-value
// record. The scheme is replicated from observed working tokens and
// has no public contract: only chain shapes seen in captures are
// encodable, and the encoder must not be extended by extrapolation.

// EncodeToken encodes a derived reference into its opaque token form.
// Supported shapes: a bare sketch entity (empty chain) and a single
// thicken step producing a swept face from a sketch edge. Anything
// else returns ErrUnresolvableReference.
func EncodeToken(ref Derived) (string, error) {
	if ref.SourceFeatureID == "" || ref.EntityID == "" {
		return "", fmt.Errorf("%w: missing source feature or entity", ErrUnresolvableReference)
	}
	if err := checkChain(ref); err != nil {
		return "", err
	}

	record := map[string]string{
		"v":    "1",
		"src":  ref.SourceFeatureID,
		"ent":  ref.EntityID,
		"type": ref.EntityType.String(),
		"fin":  finalIdentifier(ref),
	}
	if len(ref.Chain) > 0 {
		steps := make([]string, len(ref.Chain))
		for i, s := range ref.Chain {
			steps[i] = s.String()
		}
		record["ops"] = strings.Join(steps, ",")
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("query: encode token: %w", err)
	}
	if _, err := w.Write(serializeRecord(record)); err != nil {
		return "", fmt.Errorf("query: encode token: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("query: encode token: %w", err)
	}
	return tokenPrefix + base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// checkChain enforces the closed set of encodable chain shapes.
func checkChain(ref Derived) error {
	switch {
	case len(ref.Chain) == 0:
		return nil
	case len(ref.Chain) == 1 && ref.Chain[0] == StepThicken && ref.EntityType == Edge:
		return nil
	default:
		return fmt.Errorf("%w: chain %v on %s entity", ErrUnresolvableReference, ref.Chain, ref.EntityType)
	}
}

// finalIdentifier derives the terminal identifier of a chain. The
// digest is a stand-in for the service's own terminal ID, which cannot
// be predicted; it only needs to be deterministic per chain so the
// same logical reference always yields the same token.
func finalIdentifier(ref Derived) string {
	h := fnv.New64a()
	io.WriteString(h, ref.SourceFeatureID)
	io.WriteString(h, "/")
	io.WriteString(h, ref.EntityID)
	for _, s := range ref.Chain {
		io.WriteString(h, "/")
		io.WriteString(h, s.String())
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// serializeRecord renders the key-value record in sorted-key order so
// encoding is byte-stable.
func serializeRecord(record map[string]string) []byte {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(record[k])
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// DecodeToken reverses EncodeToken, returning the key-value record.
// Used to inspect tokens under test; the remote service never needs
// decoding on our side.
func DecodeToken(token string) (map[string]string, error) {
	body, ok := strings.CutPrefix(token, tokenPrefix)
	if !ok {
		return nil, fmt.Errorf("query: token missing %q header", tokenPrefix)
	}
	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("query: decode token: %w", err)
	}
	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("query: decode token: %w", err)
	}

	record := make(map[string]string)
	for _, line := range strings.Split(strings.TrimRight(string(text), "\n"), "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("query: malformed token record line %q", line)
		}
		record[k] = v
	}
	return record, nil
}

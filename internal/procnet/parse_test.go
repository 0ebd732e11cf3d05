// internal/procnet/parse_test.go
package procnet

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Inter-|   Receive                                                |  Transmit\n" +
	" face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed\n"

func TestParseLine_Match(t *testing.T) {
	snap, ok := ParseLine(" eth0: 100 2 0 0 0 0 0 0 200 4 0 0 0 0 0 0\n", "eth0")
	require.True(t, ok)

	assert.Equal(t, Snapshot{
		Interface: "eth0",
		RxBytes:   100,
		RxPackets: 2,
		TxBytes:   200,
		TxPackets: 4,
		Valid:     true,
	}, snap)
}

func TestParseLine_OtherInterface(t *testing.T) {
	_, ok := ParseLine(" eth0: 100 2 0 0 0 0 0 0 200 4 0 0 0 0 0 0\n", "eth1")
	assert.False(t, ok)
}

func TestParseLine_KeepsRetainedColumnsOnly(t *testing.T) {
	snap, ok := ParseLine("wlan0: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16", "wlan0")
	require.True(t, ok)

	assert.Equal(t, uint64(1), snap.RxBytes)
	assert.Equal(t, uint64(2), snap.RxPackets)
	assert.Equal(t, uint64(3), snap.RxErrors)
	assert.Equal(t, uint64(4), snap.RxDrops)
	assert.Equal(t, uint64(9), snap.TxBytes)
	assert.Equal(t, uint64(10), snap.TxPackets)
	assert.Equal(t, uint64(11), snap.TxErrors)
	assert.Equal(t, uint64(12), snap.TxDrops)
}

func TestParseLine_NameMatchIsExact(t *testing.T) {
	line := "  eth0: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16"

	for _, iface := range []string{"ETH0", "eth", "eth00", " eth0"} {
		_, ok := ParseLine(line, iface)
		assert.False(t, ok, "iface %q", iface)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	cases := map[string]string{
		"ten fields":       "eth0: 1 2 3 4 5 6 7 8 9 10",
		"trailing garbage": "eth0: 1 2 3 4 5 6 7 8 9x 10 11 12 13 14 15 16",
		"negative":         "eth0: -1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16",
		"overflow":         "eth0: 18446744073709551616 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16",
		"no colon":         "eth0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16",
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := ParseLine(line, "eth0")
			assert.False(t, ok)
		})
	}
}

func TestParseLine_MaxUint64(t *testing.T) {
	snap, ok := ParseLine("eth0: 18446744073709551615 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0", "eth0")
	require.True(t, ok)
	assert.Equal(t, uint64(18446744073709551615), snap.RxBytes)
}

func TestParseLine_ExtraFieldsIgnored(t *testing.T) {
	_, ok := ParseLine("eth0: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 junk", "eth0")
	assert.True(t, ok)
}

func TestParseLine_TabsAndNoSpaceAfterColon(t *testing.T) {
	snap, ok := ParseLine("\teth0\t:100\t2 0 0 0 0 0 0 200 4 0 0 0 0 0 0", "eth0")
	require.True(t, ok)
	assert.Equal(t, uint64(100), snap.RxBytes)
	assert.Equal(t, uint64(200), snap.TxBytes)
}

func TestParseLine_LongNameTruncated(t *testing.T) {
	long := strings.Repeat("a", 80)
	line := long + ": 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16"

	_, ok := ParseLine(line, long)
	assert.False(t, ok, "full-length name never matches the truncated table name")

	snap, ok := ParseLine(line, long[:MaxInterfaceLen])
	require.True(t, ok)
	assert.Len(t, snap.Interface, MaxInterfaceLen)
}

func TestParse_SkipsHeaderUnconditionally(t *testing.T) {
	// a data-shaped line in the header block is never considered
	table := "eth0: 9 9 9 9 9 9 9 9 9 9 9 9 9 9 9 9\n" +
		"eth0: 9 9 9 9 9 9 9 9 9 9 9 9 9 9 9 9\n" +
		"  eth0: 1 0 0 0 0 0 0 0 2 0 0 0 0 0 0 0\n"

	snap, ok, err := Parse(strings.NewReader(table), "eth0")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(1), snap.RxBytes)
}

func TestParse_MalformedLineDoesNotStopScan(t *testing.T) {
	table := header +
		"    lo: 1 2 3\n" +
		"  eth0: 1 2 3 4 5 6 7 8 9 10\n" +
		"  eth0: 5 6 0 0 0 0 0 0 7 8 0 0 0 0 0 0\n"

	snap, ok, err := Parse(strings.NewReader(table), "eth0")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(5), snap.RxBytes)
	assert.Equal(t, uint64(8), snap.TxPackets)
}

func TestParse_NotFound(t *testing.T) {
	table := header + "    lo: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16\n"

	_, ok, err := Parse(strings.NewReader(table), "eth0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	table := header +
		"    lo: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16\n" +
		"  eth0: 1 2 3\n" +
		"garbage without colon\n" +
		" wlan0: 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n"

	names, err := Names(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, []string{"lo", "eth0", "wlan0"}, names)
}

func TestParse_OversizedLineIsSkipped(t *testing.T) {
	table := header +
		"  junk0: " + strings.Repeat("1 ", 40000) + "\n" +
		"  eth0: 7 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0"

	snap, found, err := Parse(strings.NewReader(table), "eth0")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(7), snap.RxBytes)
}

func TestParse_CRLFAndMissingTrailingNewline(t *testing.T) {
	table := strings.ReplaceAll(header, "\n", "\r\n") + "  eth0: 7 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\r\n" +
		"  eth1: 9 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0"

	snap, found, err := Parse(strings.NewReader(table), "eth1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(9), snap.RxBytes)

	names, err := Names(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, []string{"eth0", "eth1"}, names)
}

func TestParse_ReadErrorSurfaces(t *testing.T) {
	boom := errors.New("boom")

	_, found, err := Parse(iotest.ErrReader(boom), "eth0")
	assert.False(t, found)
	assert.ErrorIs(t, err, boom)

	_, err = Names(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	controllermocks "github.com/mouse-blink/flashqual/internal/controller/mocks"
)

func TestLayoutCmd_PrintsLayout(t *testing.T) {
	cmd, out, _ := newTestRootCmd(t, nil)

	cmd.SetArgs([]string{"layout", "0x10000"})
	require.NoError(t, cmd.Execute())

	want := "# layout for a 0x10000 byte chip\n" +
		"000000:3fff BOTTOM_QUAD\n" +
		"000000:7fff BOTTOM_HALF\n" +
		"8000:ffff TOP_HALF\n" +
		"c000:ffff TOP_QUAD\n"
	assert.Equal(t, want, out.String())
}

func TestLayoutCmd_DecimalSize(t *testing.T) {
	cmd, out, _ := newTestRootCmd(t, nil)

	cmd.SetArgs([]string{"layout", "65536"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "c000:ffff TOP_QUAD")
}

func TestLayoutCmd_Errors(t *testing.T) {
	for _, arg := range []string{"big", "0", "-4", "0x3000"} {
		cmd, _, _ := newTestRootCmd(t, nil)

		cmd.SetArgs([]string{"layout", arg})
		assert.Error(t, cmd.Execute(), arg)
	}
}

func TestLayoutCmd_HandsLayoutToUI(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayLayout(int64(0x800000), "000000:1fffff BOTTOM_QUAD\n"+
		"000000:3fffff BOTTOM_HALF\n"+
		"400000:7fffff TOP_HALF\n"+
		"600000:7fffff TOP_QUAD\n").Once()
	withUI(t, ui)

	cmd, _, _ := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{"layout", "0o40000000"})
	require.NoError(t, cmd.Execute())
}

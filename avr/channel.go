package avr

// Channel identifies a physical speaker position addressable for bias
// (CV) or level (SSLEV/PSCLV/PSSWL) adjustment.
type Channel string

// The full set of speaker positions recognised on the wire, taken from
// the ChannelBias enumeration of the original daemon.
const (
	ChannelFrontLeft         Channel = "FL"
	ChannelFrontRight        Channel = "FR"
	ChannelCentre            Channel = "C"
	ChannelSubwoofer         Channel = "SW"
	ChannelSubwoofer2        Channel = "SW2"
	ChannelSurroundLeft      Channel = "SL"
	ChannelSurroundRight     Channel = "SR"
	ChannelSurroundBackLeft  Channel = "SBL"
	ChannelSurroundBackRight Channel = "SBR"
	ChannelSurroundBack      Channel = "SB"
	ChannelFrontHeightLeft   Channel = "FHL"
	ChannelFrontHeightRight  Channel = "FHR"
	ChannelFrontWideLeft     Channel = "FWL"
	ChannelFrontWideRight    Channel = "FWR"
	ChannelFrontTopLeft      Channel = "TFL"
	ChannelFrontTopRight     Channel = "TFR"
	ChannelMiddleTopLeft     Channel = "TML"
	ChannelMiddleTopRight    Channel = "TMR"
	ChannelRearTopLeft       Channel = "TRL"
	ChannelRearTopRight      Channel = "TRR"
	ChannelRearHeightLeft    Channel = "RHL"
	ChannelRearHeightRight   Channel = "RHR"
	ChannelFrontDolbyLeft    Channel = "FDL"
	ChannelFrontDolbyRight   Channel = "FDR"
	ChannelSurroundDolbyLeft  Channel = "SDL"
	ChannelSurroundDolbyRight Channel = "SDR"
	ChannelBackDolbyLeft     Channel = "BDL"
	ChannelBackDolbyRight    Channel = "BDR"
	ChannelSurroundHeightLeft  Channel = "SHL"
	ChannelSurroundHeightRight Channel = "SHR"
	ChannelTopSurround       Channel = "TS"
	ChannelCentreHeight      Channel = "CH"
)

// AllChannels lists every recognised channel code, in the order the
// original daemon declared them, used to validate SetChannelBias input.
var AllChannels = []Channel{
	ChannelFrontLeft, ChannelFrontRight, ChannelCentre, ChannelSubwoofer,
	ChannelSubwoofer2, ChannelSurroundLeft, ChannelSurroundRight,
	ChannelSurroundBackLeft, ChannelSurroundBackRight, ChannelSurroundBack,
	ChannelFrontHeightLeft, ChannelFrontHeightRight, ChannelFrontWideLeft,
	ChannelFrontWideRight, ChannelFrontTopLeft, ChannelFrontTopRight,
	ChannelMiddleTopLeft, ChannelMiddleTopRight, ChannelRearTopLeft,
	ChannelRearTopRight, ChannelRearHeightLeft, ChannelRearHeightRight,
	ChannelFrontDolbyLeft, ChannelFrontDolbyRight, ChannelSurroundDolbyLeft,
	ChannelSurroundDolbyRight, ChannelBackDolbyLeft, ChannelBackDolbyRight,
	ChannelSurroundHeightLeft, ChannelSurroundHeightRight,
	ChannelTopSurround, ChannelCentreHeight,
}

// ValidChannel reports whether c is a recognised channel code.
func ValidChannel(c Channel) bool {
	for _, v := range AllChannels {
		if v == c {
			return true
		}
	}
	return false
}

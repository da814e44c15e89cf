package avr

// Power is the closed set of values reported by PW/ZM/Z2/Z3.
type Power string

const (
	PowerOff     Power = "OFF"
	PowerOn      Power = "ON"
	PowerStandby Power = "STANDBY"
)

// InputSource is the closed set of values reported/accepted by SI/Z2SI/
// Z3SI/SV/SSSOD/SSFUN.
type InputSource string

const (
	SourcePhono        InputSource = "PHONO"
	SourceCD           InputSource = "CD"
	SourceDVD          InputSource = "DVD"
	SourceBluray       InputSource = "BD"
	SourceTV           InputSource = "TV"
	SourceSetTopBox    InputSource = "SAT/CBL"
	SourceMediaPlayer  InputSource = "MPLAY"
	SourceGame         InputSource = "GAME"
	SourceTuner        InputSource = "TUNER"
	SourceHDRadio      InputSource = "HDRADIO"
	SourceSiriusXM     InputSource = "SIRIUSXM"
	SourcePandora      InputSource = "PANDORA"
	SourceLastFM       InputSource = "LASTFM"
	SourceFlickr       InputSource = "FLICKR"
	SourceSpotify      InputSource = "SPOTIFY"
	SourceInternetRadio InputSource = "IRADIO"
	SourceServer       InputSource = "SERVER"
	SourceFavourites   InputSource = "FAVORITES"
	SourceAux1         InputSource = "AUX1"
	SourceAux2         InputSource = "AUX2"
	SourceAux3         InputSource = "AUX3"
	SourceAux4         InputSource = "AUX4"
	SourceAux5         InputSource = "AUX5"
	SourceAux6         InputSource = "AUX6"
	SourceAux7         InputSource = "AUX7"
	SourceOnlineMusic  InputSource = "NET"
	SourceBluetooth    InputSource = "BT"
	SourceMXPORT       InputSource = "MXPORT"
	SourceUSB          InputSource = "USB"
	SourceIPODDirect   InputSource = "IPOD DIRECT"
	SourceIPOD         InputSource = "IPOD"
	SourceUSBIPOD      InputSource = "USB/IPOD"
	SourceNone         InputSource = "OFF"
	SourceMain         InputSource = "SOURCE"
	Source8K           InputSource = "8K"
)

// AllSources enumerates the closed set used by the generic enum-matching
// handler and the Refresh/list accessors.
var AllSources = []InputSource{
	SourcePhono, SourceCD, SourceDVD, SourceBluray, SourceTV, SourceSetTopBox,
	SourceMediaPlayer, SourceGame, SourceTuner, SourceHDRadio, SourceSiriusXM,
	SourcePandora, SourceLastFM, SourceFlickr, SourceSpotify,
	SourceInternetRadio, SourceServer, SourceFavourites, SourceAux1,
	SourceAux2, SourceAux3, SourceAux4, SourceAux5, SourceAux6, SourceAux7,
	SourceOnlineMusic, SourceBluetooth, SourceMXPORT, SourceUSB,
	SourceIPODDirect, SourceIPOD, SourceUSBIPOD, SourceNone, SourceMain,
	Source8K,
}

// SurroundMode is the free-form-classified set of values reported by MS.
type SurroundMode string

const (
	SurroundMovie           SurroundMode = "MOVIE"
	SurroundMusic           SurroundMode = "MUSIC"
	SurroundGame            SurroundMode = "GAME"
	SurroundDirect          SurroundMode = "DIRECT"
	SurroundPureDirect      SurroundMode = "PURE DIRECT"
	SurroundStereo          SurroundMode = "STEREO"
	SurroundAuto            SurroundMode = "AUTO"
	SurroundDolbyDigital    SurroundMode = "DOLBY DIGITAL"
	SurroundDtsSurround     SurroundMode = "DTS SURROUND"
	SurroundAuro3D          SurroundMode = "AURO3D"
	SurroundAuro2DSurround  SurroundMode = "AURO2DSURR"
	SurroundMultiChStereo   SurroundMode = "MCH STEREO"
	SurroundSuperStadium    SurroundMode = "SUPER STADIUM"
	SurroundRockArena       SurroundMode = "ROCK ARENA"
	SurroundJazzClub        SurroundMode = "JAZZ CLUB"
	SurroundClassicConcert  SurroundMode = "CLASSIC CONCERT"
	SurroundMonoMovie       SurroundMode = "MONO MOVIE"
	SurroundMatrix          SurroundMode = "MATRIX"
	SurroundVirtual         SurroundMode = "VIRTUAL"
	SurroundLeft            SurroundMode = "LEFT"
	SurroundRight           SurroundMode = "RIGHT"
)

// AllSurroundModes is the closed set used for exact-literal fallback
// lookup by the MS classifier.
var AllSurroundModes = []SurroundMode{
	SurroundMovie, SurroundMusic, SurroundGame, SurroundDirect,
	SurroundPureDirect, SurroundStereo, SurroundAuto, SurroundDolbyDigital,
	SurroundDtsSurround, SurroundAuro3D, SurroundAuro2DSurround,
	SurroundMultiChStereo, SurroundSuperStadium, SurroundRockArena,
	SurroundJazzClub, SurroundClassicConcert, SurroundMonoMovie,
	SurroundMatrix, SurroundVirtual, SurroundLeft, SurroundRight,
}

// PictureMode is the closed set reported/accepted by PV.
type PictureMode string

const (
	PictureOff      PictureMode = "OFF"
	PictureStandard PictureMode = "STD"
	PictureMovie    PictureMode = "MOV"
	PictureVivid    PictureMode = "VVD"
	PictureStream   PictureMode = "STM"
	PictureCustom   PictureMode = "CTM"
	PictureISFDay   PictureMode = "DAY"
	PictureISFNight PictureMode = "NGT"
)

var AllPictureModes = []PictureMode{
	PictureOff, PictureStandard, PictureMovie, PictureVivid, PictureStream,
	PictureCustom, PictureISFDay, PictureISFNight,
}

// EcoMode is the closed set reported/accepted by ECO.
type EcoMode string

const (
	EcoOff  EcoMode = "OFF"
	EcoOn   EcoMode = "ON"
	EcoAuto EcoMode = "AUTO"
)

var AllEcoModes = []EcoMode{EcoOff, EcoOn, EcoAuto}

// DRCMode is the closed set reported/accepted by PSDRC.
type DRCMode string

const (
	DRCOff    DRCMode = "OFF"
	DRCAuto   DRCMode = "AUTO"
	DRCHigh   DRCMode = "HI"
	DRCMedium DRCMode = "MID"
	DRCLow    DRCMode = "LOW"
)

var AllDRCModes = []DRCMode{DRCOff, DRCAuto, DRCHigh, DRCMedium, DRCLow}

// DynamicVolumeMode is the closed set reported/accepted by PSDYNVOL.
type DynamicVolumeMode string

const (
	DynamicVolumeOff    DynamicVolumeMode = "OFF"
	DynamicVolumeLight  DynamicVolumeMode = "LIT"
	DynamicVolumeMedium DynamicVolumeMode = "MED"
	DynamicVolumeHeavy  DynamicVolumeMode = "HEV"
)

var AllDynamicVolumeModes = []DynamicVolumeMode{
	DynamicVolumeOff, DynamicVolumeLight, DynamicVolumeMedium, DynamicVolumeHeavy,
}

// AudioRestorer is the closed set reported/accepted by PSRSTR.
type AudioRestorer string

const (
	RestorerOff AudioRestorer = "OFF"
	RestorerLow AudioRestorer = "LOW"
	RestorerMed AudioRestorer = "MED"
	RestorerHi  AudioRestorer = "HI"
)

var AllAudioRestorers = []AudioRestorer{RestorerOff, RestorerLow, RestorerMed, RestorerHi}

// Standby is the closed set of auto-standby timer values.
type Standby string

const (
	Standby15Min Standby = "15M"
	Standby30Min Standby = "30M"
	Standby60Min Standby = "60M"
	StandbyOff   Standby = "OFF"
)

var AllStandby = []Standby{Standby15Min, Standby30Min, Standby60Min, StandbyOff}

// BluetoothOutputMode is the closed set reported/accepted by BTTX's
// output-mode dimension.
type BluetoothOutputMode string

const (
	BluetoothOutputSpeakerAndBT BluetoothOutputMode = "SP"
	BluetoothOutputBTOnly       BluetoothOutputMode = "BT"
)

var AllBluetoothOutputModes = []BluetoothOutputMode{BluetoothOutputSpeakerAndBT, BluetoothOutputBTOnly}

// MicroCodeType indexes the SSINFFRM multi-line microcode-version block.
type MicroCodeType string

const (
	MicroCodeDTS MicroCodeType = "DTS"
	MicroCodeAVR MicroCodeType = "AVR"
)

// EventKind is the closed set of lifecycle events a Session emits.
type EventKind string

const (
	EventInit    EventKind = "Init"
	EventPing    EventKind = "Ping"
	EventTimeOut EventKind = "TimeOut"
	EventClose   EventKind = "Close"

	// EventRegister and EventUnregister are emitted by the supervisor
	// itself, not by a Session, when a device is added to or removed
	// from the registry.
	EventRegister   EventKind = "register"
	EventUnregister EventKind = "unregister"
)

package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gen2brain/malgo"
)

// ErrNoDevice is returned when a device operation needs an allocated device.
var ErrNoDevice = errors.New("device nil. have you allocated it with Play()?")

// Source produces interleaved S16LE frames for a playback device.
// Fill is called from the audio device thread.
type Source interface {
	Fill(out []byte)
}

type Device interface {
	// EnumerateDevices lists available playback devices.
	// It ignores any device configuration passed in.
	EnumerateDevices(ctx context.Context) ([]Info, error)

	// Play initializes the underlying device so that, once Start() is
	// called, it pulls frames from src.
	Play(ctx context.Context, src Source) error

	// Start starts the audio device.
	Start(ctx context.Context) error
	// Stop stops the audio device.
	// if the underlying device has already been deallocated this is a no-op.
	Stop(ctx context.Context) error

	// Toggle starts or stops the audio device depending on its current state.
	Toggle(ctx context.Context) error

	// IsStarted returns whether the audio device is currently started.
	IsStarted() bool

	// Dealloc deallocates the underlying audio device and frees resources.
	Dealloc(ctx context.Context)
}

type device struct {
	conf *DeviceConfig

	mgCtx    *malgo.AllocatedContext
	mgDevice *malgo.Device
}

func NewDevice(conf *DeviceConfig) Device {
	if conf == nil {
		conf = DefaultDeviceConfig()
	}

	return &device{conf: conf}
}

func (d *device) EnumerateDevices(_ context.Context) ([]Info, error) {
	// An empty context is enough for enumerating devices.
	devCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize malgo context: %w", err)
	}
	defer uninitializeContext(devCtx)

	playbackDevices, err := devCtx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("failed to get playback devices: %w", err)
	}

	infos := make([]Info, len(playbackDevices))
	for i, pd := range playbackDevices {
		infos[i] = malgoDeviceInfoToDeviceInfo(pd)
	}

	return infos, nil
}

func (d *device) Play(_ context.Context, src Source) error {
	if src == nil {
		return errors.New("source is nil. unable to allocate device")
	}

	var err error
	d.mgCtx, d.mgDevice, err = d.allocPlaybackDevice(src)
	if err != nil {
		return fmt.Errorf("failed to create malgo playback device: %w", err)
	}

	return nil
}

func (d *device) Start(_ context.Context) error {
	if d.mgDevice == nil {
		return ErrNoDevice
	}

	if d.mgDevice.IsStarted() {
		return nil
	}

	if err := d.mgDevice.Start(); err != nil {
		return fmt.Errorf("failed to start malgo device: %w", err)
	}

	return nil
}

func (d *device) Stop(_ context.Context) error {
	if d.mgDevice == nil {
		return nil
	}

	if err := d.mgDevice.Stop(); err != nil {
		return fmt.Errorf("failed to stop malgo device: %w", err)
	}

	return nil
}

func (d *device) Toggle(ctx context.Context) error {
	if d.mgDevice == nil {
		return ErrNoDevice
	}

	if d.mgDevice.IsStarted() {
		return d.Stop(ctx)
	}

	return d.Start(ctx)
}

func (d *device) Dealloc(_ context.Context) {
	if d.mgDevice == nil {
		return
	}

	d.mgDevice.Uninit()
	uninitializeContext(d.mgCtx)
	d.mgDevice = nil
	d.mgCtx = nil
}

func (d *device) IsStarted() bool {
	if d.mgDevice == nil {
		return false
	}

	return d.mgDevice.IsStarted()
}

func (d *device) allocPlaybackDevice(src Source) (*malgo.AllocatedContext, *malgo.Device, error) {
	mgCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		slog.Debug("malgo", "message", message)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize malgo context: %w", err)
	}

	devCnf := malgo.DefaultDeviceConfig(malgo.Playback)
	devCnf.Playback.Format = d.conf.Format
	devCnf.Playback.Channels = uint32(d.conf.PlaybackChannels)
	devCnf.SampleRate = uint32(d.conf.SampleRate)

	callBacks := malgo.DeviceCallbacks{
		Data: func(out, _ []byte, _ uint32) {
			src.Fill(out)
		},
	}

	mgDevice, err := malgo.InitDevice(mgCtx.Context, devCnf, callBacks)
	if err != nil {
		uninitializeContext(mgCtx)
		return nil, nil, fmt.Errorf("failed to initialize malgo device: %w", err)
	}

	return mgCtx, mgDevice, nil
}

type Info struct {
	Name        string
	IsDefault   bool
	FormatCount int
	Formats     []string
}

func malgoDeviceInfoToDeviceInfo(mdi malgo.DeviceInfo) Info {
	formats := make([]string, len(mdi.Formats))
	for i, mf := range mdi.Formats {
		formats[i] = fmt.Sprintf("(SampleSizeBytes: %d, Channels: %d, SampleRate: %d)",
			malgo.SampleSizeInBytes(mf.Format),
			mf.Channels, mf.SampleRate)
	}

	return Info{
		Name:        mdi.Name(),
		IsDefault:   mdi.IsDefault != 0,
		FormatCount: int(mdi.FormatCount),
		Formats:     formats,
	}
}

func uninitializeContext(deviceCtx *malgo.AllocatedContext) {
	if deviceCtx == nil {
		return
	}

	if err := deviceCtx.Uninit(); err != nil {
		slog.Error("failed to uninitialize malgo context", "error", err)
	}
	deviceCtx.Free()
}

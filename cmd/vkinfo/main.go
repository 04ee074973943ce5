// Command vkinfo prints what the Vulkan driver offers as YAML: instance
// extensions and layers, then every physical device with its queue families
// and device extensions. No window is opened.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/andewx/presentvk"
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
	"github.com/xlab/closer"
	"gopkg.in/yaml.v3"
)

type queueFamilyInfo struct {
	Index        uint32   `yaml:"index"`
	Count        uint32   `yaml:"count"`
	Capabilities []string `yaml:"capabilities"`
}

type deviceInfo struct {
	Name          string            `yaml:"name"`
	Type          string            `yaml:"type"`
	APIVersion    string            `yaml:"api_version"`
	DriverVersion uint32            `yaml:"driver_version"`
	MemoryHeaps   uint32            `yaml:"memory_heaps"`
	QueueFamilies []queueFamilyInfo `yaml:"queue_families"`
	Extensions    []string          `yaml:"extensions"`
	Layers        []string          `yaml:"layers,omitempty"`
}

type report struct {
	InstanceExtensions []string     `yaml:"instance_extensions"`
	InstanceLayers     []string     `yaml:"instance_layers"`
	Devices            []deviceInfo `yaml:"devices"`
}

func main() {
	validation := flag.Bool("validation", false, "enable validation layers on the probe instance")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()
	defer closer.Close()

	log := presentvk.NewLogger(os.Stderr, *level, "text")

	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		closer.Fatalln(errors.Wrap(err, "load vulkan loader"))
	}
	if err := vk.Init(); err != nil {
		closer.Fatalln(errors.Wrap(err, "vulkan init"))
	}

	d := presentvk.NewDriver()
	out, err := probe(d, *validation, log)
	if err != nil {
		closer.Fatalln(err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		closer.Fatalln(err)
	}
	enc.Close()
}

func probe(d presentvk.Driver, validation bool, log *slog.Logger) (report, error) {
	var r report
	var err error
	if r.InstanceExtensions, err = presentvk.InstanceExtensions(d); err != nil {
		return r, err
	}
	if r.InstanceLayers, err = presentvk.InstanceLayers(d); err != nil {
		return r, err
	}

	args := presentvk.InstanceArgs{AppName: "vkinfo", AppVersion: 1}
	if validation {
		args.Layers = presentvk.SelectNames(r.InstanceLayers, "validation")
		args.Extensions = presentvk.SelectNames(r.InstanceExtensions, "debug")
	}
	ctx, err := presentvk.NewGraphicsContext(d, args, log)
	defer ctx.Destroy()
	if err != nil {
		return r, err
	}

	gpus, err := presentvk.PhysicalDevices(d, ctx.Instance)
	if err != nil {
		return r, err
	}
	for _, gpu := range gpus {
		info := deviceInfo{
			Name:          gpu.Name,
			Type:          presentvk.DeviceTypeName(gpu.Type),
			APIVersion:    presentvk.VersionString(gpu.APIVersion),
			DriverVersion: gpu.DriverVersion,
			MemoryHeaps:   gpu.Memory.MemoryHeapCount,
		}
		for _, family := range gpu.QueueFamilies {
			info.QueueFamilies = append(info.QueueFamilies, queueFamilyInfo{
				Index:        family.Index,
				Count:        family.Count,
				Capabilities: family.Capabilities(),
			})
		}
		if info.Extensions, err = presentvk.DeviceExtensions(d, gpu.Handle); err != nil {
			log.Warn("device extensions unavailable", "device", gpu.Name, "err", err)
		}
		if info.Layers, err = presentvk.DeviceLayers(d, gpu.Handle); err != nil {
			log.Warn("device layers unavailable", "device", gpu.Name, "err", err)
		}
		r.Devices = append(r.Devices, info)
	}
	return r, nil
}

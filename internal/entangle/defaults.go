// SPDX-License-Identifier: MPL-2.0

package entangle

// Kernel, bootloader and CA bundle variants are rebuilt from the same
// sources and must ship with identical Version and Release.
var defaultVersionReleaseGroups = [][]string{
	{
		"SPECS-SIGNED/kernel-signed-x64/kernel-signed-x64.spec",
		"SPECS-SIGNED/kernel-signed-aarch64/kernel-signed-aarch64.spec",
		"SPECS/kernel/kernel.spec",
		"SPECS/kernel-headers/kernel-headers.spec",
	},
	{
		"SPECS-SIGNED/grub2-efi-binary-signed-x64/grub2-efi-binary-signed-x64.spec",
		"SPECS-SIGNED/grub2-efi-binary-signed-aarch64/grub2-efi-binary-signed-aarch64.spec",
		"SPECS/grub2/grub2.spec",
	},
	{
		"SPECS/ca-certificates/ca-certificates.spec",
		"SPECS/prebuilt-ca-certificates-base/prebuilt-ca-certificates-base.spec",
	},
}

// The Hyper-V daemons track the kernel's version but carry their own release.
var defaultVersionGroups = [][]string{
	{
		"SPECS/hyperv-daemons/hyperv-daemons.spec",
		"SPECS/kernel/kernel.spec",
		"SPECS/kernel-hyperv/kernel-hyperv.spec",
	},
}

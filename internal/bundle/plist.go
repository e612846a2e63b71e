package bundle

import "fmt"

// infoPlist renders the Info.plist for a macOS .app bundle.
func infoPlist(name, bundleID, version string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>CFBundleExecutable</key>
    <string>%s</string>
    <key>CFBundleIdentifier</key>
    <string>%s</string>
    <key>CFBundleName</key>
    <string>%s</string>
    <key>CFBundlePackageType</key>
    <string>APPL</string>
    <key>CFBundleVersion</key>
    <string>%s</string>
    <key>NSHighResolutionCapable</key>
    <true/>
</dict>
</plist>
`, name, bundleID, name, version)
}

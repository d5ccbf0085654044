package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/embedded"
	"github.com/decker502/coinfountain/pkg/utils"
)

// 资源键
const (
	// AssetCoin 发射器粒子使用的金币纹理
	AssetCoin = "coin"
	// AssetStarBig 物理金币使用的序列帧（"flip" 动画）
	AssetStarBig = "starBig"
	// AssetBackground 背景平铺块
	AssetBackground = "background"
)

// 程序生成纹理的尺寸
const (
	coinRadius     = 24
	starRadius     = 32
	backgroundTile = 64
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, keyed by asset key,
// ensuring that resources are created only once and reused throughout the game.
//
// Images listed in the config's assets section are loaded from the embedded
// data FS (paths starting with "data/") or from the OS file system. When a
// path is empty or fails to load, a procedural texture is generated instead,
// so the scene never depends on shipped art.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image   // path or asset key -> Image
	frameCache map[string][]*ebiten.Image // asset key -> animation frames
	fontFace   text.Face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
		frameCache: make(map[string][]*ebiten.Image),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: "data/..." paths are read from the embedded FS, everything else from disk.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	var (
		reader io.Reader
		err    error
	)
	if strings.HasPrefix(path, "data/") && embedded.IsInitialized() {
		var data []byte
		data, err = embedded.ReadFile(path)
		reader = bytes.NewReader(data)
	} else {
		var file *os.File
		file, err = os.Open(path)
		if err == nil {
			defer file.Close()
			reader = file
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// RegisterImage 以资源键缓存一张图像
func (rm *ResourceManager) RegisterImage(key string, img *ebiten.Image) {
	rm.imageCache[key] = img
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(key string) *ebiten.Image {
	return rm.imageCache[key]
}

// RegisterFrames 以资源键缓存动画帧
func (rm *ResourceManager) RegisterFrames(key string, frames []*ebiten.Image) {
	rm.frameCache[key] = frames
}

// GetFrames 返回资源键对应的动画帧，未加载时返回 nil
func (rm *ResourceManager) GetFrames(key string) []*ebiten.Image {
	return rm.frameCache[key]
}

// LoadSceneAssets 加载金币喷泉场景需要的全部图像
//
// 配置了路径的资源优先从文件加载；加载失败只记录警告并回退到程序生成的纹理。
//
// 参数:
//   - cfg: 场景配置（使用 Assets、World.BackgroundColor、BasicCoin.FrameCount）
//
// 返回:
//   - error: 背景颜色无法解析时返回错误
func (rm *ResourceManager) LoadSceneAssets(cfg *config.CoinFountainConfig) error {
	bgColor, err := config.ParseHexColor(cfg.World.BackgroundColor)
	if err != nil {
		return fmt.Errorf("invalid background color: %w", err)
	}

	frameCount := cfg.BasicCoin.FrameCount

	// 粒子纹理
	if img := rm.loadOptional(cfg.Assets[AssetCoin]); img != nil {
		rm.RegisterImage(AssetCoin, img)
	} else {
		rm.RegisterImage(AssetCoin, utils.NewCoinImage(coinRadius))
	}

	// 物理金币序列帧
	if sheet := rm.loadOptional(cfg.Assets[AssetStarBig]); sheet != nil {
		rm.RegisterImage(AssetStarBig, sheet)
		rm.RegisterFrames(AssetStarBig, utils.SplitFrames(sheet, frameCount))
	} else {
		star := utils.NewStarImage(starRadius)
		rm.RegisterImage(AssetStarBig, star)
		rm.RegisterFrames(AssetStarBig, utils.NewFlipFrames(star, frameCount))
	}

	// 背景
	if img := rm.loadOptional(cfg.Assets[AssetBackground]); img != nil {
		rm.RegisterImage(AssetBackground, img)
	} else {
		rm.RegisterImage(AssetBackground, utils.NewBackgroundTile(backgroundTile, bgColor))
	}

	log.Printf("[ResourceManager] Scene assets ready (%d flip frames)", len(rm.GetFrames(AssetStarBig)))
	return nil
}

// loadOptional 加载可选图片，路径为空或失败时返回 nil
func (rm *ResourceManager) loadOptional(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	img, err := rm.LoadImage(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v (using generated texture)", err)
		return nil
	}
	return img
}

// DefaultFontFace 返回 HUD 使用的位图字体
func (rm *ResourceManager) DefaultFontFace() text.Face {
	if rm.fontFace == nil {
		rm.fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return rm.fontFace
}

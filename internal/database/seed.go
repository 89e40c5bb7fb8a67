package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"melodee/internal/models"
)

func strPtr(s string) *string {
	return &s
}

// seedDefaultLibraries creates the four storage library rows. Seeding only
// happens into an empty table, so replaying it is harmless.
func seedDefaultLibraries(tx *gorm.DB) error {
	var count int64
	if err := tx.Table("libraries").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultLibraries := []initLibrary{
		{
			ID:   1,
			Name: "Inbound",
			Path: "/storage/inbound/",
			Type: 1,
			InitEnvelope: InitEnvelope{
				Description: strPtr("Files in this directory are scanned and Album information is gathered via processing."),
			},
		},
		{
			ID:   2,
			Name: "Staging",
			Path: "/storage/staging/",
			Type: 2,
			InitEnvelope: InitEnvelope{
				Description: strPtr("The staging directory to place processed files into (Inbound -> Staging -> Library)."),
			},
		},
		{
			ID:   3,
			Name: "Library",
			Path: "/storage/library/",
			Type: 3,
			InitEnvelope: InitEnvelope{
				Description: strPtr("The library directory to place processed, reviewed and ready to use music files into."),
			},
		},
		{
			ID:   4,
			Name: "User Images",
			Path: "/storage/images/users/",
			Type: 4,
			InitEnvelope: InitEnvelope{
				Description: strPtr("Library where user images are stored."),
			},
		},
	}

	for i := range defaultLibraries {
		defaultLibraries[i].APIKey = uuid.New()
		defaultLibraries[i].CreatedAt = time.Now().UTC()
		if err := tx.Create(&defaultLibraries[i]).Error; err != nil {
			return fmt.Errorf("failed to seed library %s: %w", defaultLibraries[i].Name, err)
		}
	}

	return nil
}

// catalogSetting is one row of the baseline settings catalog. Ids are fixed;
// the ranges group by category (100s api, 200s conversion, 300s formatting,
// 400s imaging, 500s magic, 700s plugins, 900s search engines, 1000s
// scrobbling, 1100s system, 1200s transcoding, 1300s validation, 1400s jobs).
type catalogSetting struct {
	ID       int32
	Category models.SettingCategory
	Key      string
	Value    string
	Comment  string
}

// seedSettingsCatalog inserts the baseline settings catalog into an empty
// settings table.
func seedSettingsCatalog(tx *gorm.DB) error {
	var count int64
	if err := tx.Table("settings").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, setting := range settingsCatalog {
		if err := insertSetting(tx, setting.ID, setting.Category, setting.Key, setting.Value, setting.Comment); err != nil {
			return err
		}
	}

	return nil
}

// settingsCatalog is the baseline configuration shipped with a new database.
// Later migrations append to it by fixed id; nothing here is ever renumbered.
var settingsCatalog = []catalogSetting{
	{1, 0, "filtering.lessThanSongCount", "3", "Add a default filter to show only albums with this or less number of songs."},
	{2, 0, "filtering.lessThanDuration", "720000", "Add a default filter to show only albums with this or less duration."},
	{3, 0, "processing.stagingDirectoryScanLimit", "250", "Maximum number of albums to scan when processing inbound directory."},
	{4, 0, "defaults.pagesize", "100", "Default page size when view including pagination."},
	{6, 0, "userinterface.toastAutoCloseTime", "2000", "Amount of time to display a Toast then auto-close (in milliseconds.)"},
	{9, 0, "processing.ignoredArticles", "THE|EL|LA|LOS|LAS|LE|LES|OS|AS|O|A", "List of ignored articles when scanning media (pipe delimited)."},
	{26, 0, "processing.artistNameReplacements", "{'AC/DC': ['AC; DC', 'AC;DC', 'AC/ DC', 'AC DC'] , 'Love/Hate': ['Love; Hate', 'Love;Hate', 'Love/ Hate', 'Love Hate'] }", "Fragments of artist names to replace (JSON Dictionary)."},
	{27, 0, "processing.doUseCurrentYearAsDefaultOrigAlbumYearValue", "true", "If OrigAlbumYear [TOR, TORY, TDOR] value is invalid use current year."},
	{28, 0, "processing.doDeleteOriginal", "false", "Delete original files when processing. When false a copy if made, else original is deleted after processed."},
	{29, 0, "processing.convertedExtension", "_converted", "Extension to add to file when converted, leave blank to disable."},
	{30, 0, "processing.processedExtension", "_processed", "Extension to add to file when processed, leave blank to disable."},
	{31, 0, "processing.skippedExtension", "_skipped", "Extension to add to file to indicate other files in the same category where processed and this file was skipped during processing, leave blank to disable."},
	{32, 0, "processing.doOverrideExistingMelodeeDataFiles", "true", "When processing over write any existing Melodee data files, otherwise skip and leave in place."},
	{34, 0, "processing.maximumProcessingCount", "0", "The maximum number of files to process, set to zero for unlimited."},
	{35, 0, "processing.maximumAlbumDirectoryNameLength", "255", "Maximum allowed length of album directory name."},
	{36, 0, "processing.maximumArtistDirectoryNameLength", "255", "Maximum allowed length of artist directory name."},
	{37, 0, "processing.albumTitleRemovals", "['^', '~', '#']", "Fragments to remove from album titles (JSON array)."},
	{38, 0, "processing.songTitleRemovals", "[';', '(Remaster)', 'Remaster']", "Fragments to remove from song titles (JSON array)."},
	{39, 0, "processing.doContinueOnDirectoryProcessingErrors", "true", "Continue processing if an error is encountered."},
	{41, 0, "scripting.enabled", "false", "Is scripting enabled."},
	{42, 0, "scripting.preDiscoveryScript", "", "Script to run before processing the inbound directory, leave blank to disable."},
	{43, 0, "scripting.postDiscoveryScript", "", "Script to run after processing the inbound directory, leave blank to disable."},
	{44, models.SettingCategoryValidation, "validation.maximumMediaNumber", "999", "The maximum value a media number can have for an album. The length of this is used for formatting song names."},
	{45, 0, "processing.ignoredPerformers", "", "Don't create performer contributors for these performer names."},
	{46, 0, "processing.ignoredProduction", "['www.t.me;pmedia_music']", "Don't create production contributors for these production names."},
	{47, 0, "processing.ignoredPublishers", "['P.M.E.D.I.A','PMEDIA','PMEDIA GROUP']", "Don't create publisher contributors for these artist names."},
	{48, 0, "processing.skippedDirectoryPrefix", "_skip_ ", "Prefix to apply to directories to skip processing. This is also used then a directory throws an error attempting to be processed, to prevent future processing."},
	{49, 0, "encryption.privateKey", "H+Kiik6VMKfTD2MesF1GoMjczTrD5RhuKckJ5+/UQWOdWajGcsEC3yEnlJ5eoy8Y", "Private key used to encrypt/decrypt passwords for Subsonic authentication. Use https://generate-random.org/encryption-key-generator?count=1&bytes=32&cipher=aes-256-cbc&string=&password= to generate a new key."},
	{50, 0, "processing.duplicateAlbumPrefix", "__duplicate_ ", "Prefix to apply to indicate an album directory is a duplicate album for an artist. If left blank the default of '__duplicate_' will be used."},
	{53, 0, "defaults.batchSize", "250", "Processing batching size. Allowed range is between [250] and [1000]. "},
	{100, models.SettingCategoryAPI, "openSubsonicServer.openSubsonic.serverSupportedVersion", "1.16.1", "OpenSubsonic server supported Subsonic API version."},
	{101, models.SettingCategoryAPI, "openSubsonicServer.openSubsonicServer.type", "Melodee", "OpenSubsonic server name."},
	{102, models.SettingCategoryAPI, "openSubsonicServer.openSubsonicServer.version", "1.0.1 (beta)", "OpenSubsonic server actual version. [Ex: 1.2.3 (beta)]"},
	{103, models.SettingCategoryAPI, "openSubsonicServer.openSubsonicServerLicenseEmail", "noreply@localhost.lan", "OpenSubsonic email to use in License responses."},
	{104, models.SettingCategoryAPI, "openSubsonicServer.openSubsonicServer.index.artistLimit", "1000", "Limit the number of artists to include in an indexes request, set to zero for 32k per index (really not recommended with tens of thousands of artists and mobile clients timeout downloading indexes, a user can find an artist by search)"},
	{200, models.SettingCategoryConversion, "conversion.enabled", "true", "Enable Melodee to convert non-mp3 media files during processing."},
	{201, models.SettingCategoryConversion, "conversion.bitrate", "384", "Bitrate to convert non-mp3 media files during processing."},
	{202, models.SettingCategoryConversion, "conversion.vbrLevel", "4", "Vbr to convert non-mp3 media files during processing."},
	{203, models.SettingCategoryConversion, "conversion.samplingRate", "48000", "Sampling rate to convert non-mp3 media files during processing."},
	{300, models.SettingCategoryFormatting, "formatting.dateTimeDisplayFormatShort", "yyyyMMdd HH\\\\:mm", "Short Format to use when displaying full dates."},
	{301, models.SettingCategoryFormatting, "formatting.dateTimeDisplayActivityFormat", "hh\\\\:mm\\\\:ss\\\\.ffff", "Format to use when displaying activity related dates (e.g., processing messages)"},
	{400, models.SettingCategoryImaging, "imaging.doLoadEmbeddedImages", "true", "Include any embedded images from media files into the Melodee data file."},
	{401, models.SettingCategoryImaging, "imaging.smallSize", "300", "Small image size (square image, this is both width and height)."},
	{402, models.SettingCategoryImaging, "imaging.mediumSize", "600", "Medium image size (square image, this is both width and height)."},
	{403, models.SettingCategoryImaging, "imaging.largeSize", "1600", "Large image size (square image, this is both width and height), if larger than will be resized to this image, leave blank to disable."},
	{404, models.SettingCategoryImaging, "imaging.maximumNumberOfAlbumImages", "25", "Maximum allowed number of images for an album, this includes all image types (Front, Rear, etc.), set to zero for unlimited."},
	{405, models.SettingCategoryImaging, "imaging.maximumNumberOfArtistImages", "25", "Maximum allowed number of images for an artist, set to zero for unlimited."},
	{406, models.SettingCategoryImaging, "imaging.minimumImageSize", "300", "Images under this size are considered invalid, set to zero to disable."},
	{500, models.SettingCategoryMagic, "magic.enabled", "true", "Is Magic processing enabled."},
	{501, models.SettingCategoryMagic, "magic.doRenumberSongs", "true", "Renumber songs when doing magic processing."},
	{502, models.SettingCategoryMagic, "magic.doRemoveFeaturingArtistFromSongArtist", "true", "Remove featured artists from song artist when doing magic."},
	{503, models.SettingCategoryMagic, "magic.doRemoveFeaturingArtistFromSongTitle", "true", "Remove featured artists from song title when doing magic."},
	{504, models.SettingCategoryMagic, "magic.doReplaceSongsArtistSeparators", "true", "Replace song artist separators with standard ID3 separator ('/') when doing magic."},
	{505, models.SettingCategoryMagic, "magic.doSetYearToCurrentIfInvalid", "true", "Set the song year to current year if invalid or missing when doing magic."},
	{506, models.SettingCategoryMagic, "magic.doRemoveUnwantedTextFromAlbumTitle", "true", "Remove unwanted text from album title when doing magic."},
	{507, models.SettingCategoryMagic, "magic.doRemoveUnwantedTextFromSongTitles", "true", "Remove unwanted text from song titles when doing magic."},
	{700, models.SettingCategoryPluginProcess, "plugin.cueSheet.enabled", "true", "Process of CueSheet files during processing."},
	{701, models.SettingCategoryPluginProcess, "plugin.m3u.enabled", "true", "Process of M3U files during processing."},
	{702, models.SettingCategoryPluginProcess, "plugin.nfo.enabled", "true", "Process of NFO files during processing."},
	{703, models.SettingCategoryPluginProcess, "plugin.simpleFileVerification.enabled", "true", "Process of Simple File Verification (SFV) files during processing."},
	{704, models.SettingCategoryPluginProcess, "processing.doDeleteComments", "true", "If true then all comments will be removed from media files."},
	{902, models.SettingCategorySearchEngine, "searchEngine.userAgent", "Mozilla/5.0 (X11; Linux x86_64; rv:131.0) Gecko/20100101 Firefox/131.0", "User agent to send with Search engine requests."},
	{903, models.SettingCategorySearchEngine, "searchEngine.defaultPageSize", "20", "Default page size when performing a search engine search."},
	{904, models.SettingCategorySearchEngine, "searchEngine.musicbrainz.enabled", "true", "Is MusicBrainz search engine enabled."},
	{905, models.SettingCategorySearchEngine, "searchEngine.musicbrainz.storagePath", "/melodee_test/search-engine-storage/musicbrainz/", "Storage path to hold MusicBrainz downloaded files and SQLite db."},
	{906, models.SettingCategorySearchEngine, "searchEngine.musicbrainz.importMaximumToProcess", "0", "Maximum number of batches import from MusicBrainz downloaded db dump (this setting is usually used during debugging), set to zero for unlimited."},
	{907, models.SettingCategorySearchEngine, "searchEngine.musicbrainz.importBatchSize", "50000", "Number of records to import from MusicBrainz downloaded db dump before commiting to local SQLite database."},
	{908, models.SettingCategorySearchEngine, "searchEngine.musicbrainz.importLastImportTimestamp", "", "Timestamp of when last MusicBrainz import was successful."},
	{910, models.SettingCategorySearchEngine, "searchEngine.spotify.enabled", "false", "Is Spotify search engine enabled."},
	{911, models.SettingCategorySearchEngine, "searchEngine.spotify.apiKey", "", "ApiKey used used with Spotify. See https://developer.spotify.com/ for more details."},
	{912, models.SettingCategorySearchEngine, "searchEngine.spotify.sharedSecret", "", "Shared secret used with Spotify. See https://developer.spotify.com/ for more details."},
	{913, models.SettingCategorySearchEngine, "searchEngine.spotify.accessToken", "", "Token obtained from Spotify using the ApiKey and the Secret, this json contains expiry information."},
	{917, models.SettingCategorySearchEngine, "searchEngine.artistSearchDatabaseRefreshInDays", "14", "Refresh albums for artists from search engine database every x days, set to zero to not refresh."},
	{1000, models.SettingCategoryScrobbling, "scrobbling.enabled", "false", "Is scrobbling enabled."},
	{1001, models.SettingCategoryScrobbling, "scrobbling.lastFm.Enabled", "false", "Is scrobbling to Last.fm enabled."},
	{1002, models.SettingCategoryScrobbling, "scrobbling.lastFm.apiKey", "", "ApiKey used used with last FM. See https://www.last.fm/api/authentication for more details."},
	{1003, models.SettingCategoryScrobbling, "scrobbling.lastFm.sharedSecret", "", "Shared secret used with last FM. See https://www.last.fm/api/authentication for more details."},
	{1100, models.SettingCategorySystem, "system.baseUrl", "** REQUIRED: THIS MUST BE EDITED **", "Base URL for Melodee to use when building shareable links and image urls (e.g., 'https://server.domain.com:8080', 'http://server.domain.com')."},
	{1101, models.SettingCategorySystem, "system.isDownloadingEnabled", "true", "Is downloading enabled."},
	{1200, models.SettingCategoryTranscoding, "transcoding.default", "raw", "Default format for transcoding."},
	{1201, models.SettingCategoryTranscoding, "transcoding.command.mp3", "{ 'format': 'Mp3', 'bitrate: 192, 'command': 'ffmpeg -i %s -ss %t -map 0:a:0 -b:a %bk -v 0 -f mp3 -' }", "Default command to transcode MP3 for streaming."},
	{1202, models.SettingCategoryTranscoding, "transcoding.command.opus", "{ 'format': 'Opus', 'bitrate: 128, 'command': 'ffmpeg -i %s -ss %t -map 0:a:0 -b:a %bk -v 0 -c:a libopus -f opus -' }", "Default command to transcode using libopus for streaming."},
	{1203, models.SettingCategoryTranscoding, "transcoding.command.aac", "{ 'format': 'Aac', 'bitrate: 256, 'command': 'ffmpeg -i %s -ss %t -map 0:a:0 -b:a %bk -v 0 -c:a aac -f adts -' }", "Default command to transcode to aac for streaming."},
	{1300, models.SettingCategoryValidation, "validation.maximumSongNumber", "9999", "The maximum value a song number can have for an album. The length of this is used for formatting song names."},
	{1301, models.SettingCategoryValidation, "validation.minimumAlbumYear", "1860", "Minimum allowed year for an album."},
	{1302, models.SettingCategoryValidation, "validation.maximumAlbumYear", "2150", "Maximum allowed year for an album."},
}
